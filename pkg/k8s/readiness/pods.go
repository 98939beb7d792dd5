package readiness

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// WaitForPodsReady polls until namespace has at least one pod and every pod that
// has not completed reports condition Ready=True.
func WaitForPodsReady(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	deadline time.Duration,
) error {
	return PollForReadiness(ctx, deadline, func(ctx context.Context) (bool, error) {
		pods, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return false, nil //nolint:nilerr // keep polling while the API settles
		}

		return allPodsReady(pods.Items), nil
	})
}

func allPodsReady(pods []corev1.Pod) bool {
	running := 0

	for i := range pods {
		if pods[i].Status.Phase == corev1.PodSucceeded {
			continue
		}

		if !isPodReady(&pods[i]) {
			return false
		}

		running++
	}

	return running > 0
}

func isPodReady(pod *corev1.Pod) bool {
	for _, cond := range pod.Status.Conditions {
		if cond.Type == corev1.PodReady {
			return cond.Status == corev1.ConditionTrue
		}
	}

	return false
}
