package readiness

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// NodeCount is the number of nodes in a cluster and how many of them are Ready.
type NodeCount struct {
	Total int
	Ready int
}

// CountNodes lists the cluster nodes once.
func CountNodes(ctx context.Context, clientset kubernetes.Interface) (NodeCount, error) {
	nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return NodeCount{}, fmt.Errorf("list nodes: %w", err)
	}

	count := NodeCount{Total: len(nodes.Items)}

	for i := range nodes.Items {
		if isNodeReady(&nodes.Items[i]) {
			count.Ready++
		}
	}

	return count, nil
}

func isNodeReady(node *corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}

	return false
}
