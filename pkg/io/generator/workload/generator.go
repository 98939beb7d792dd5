// Package workloadgenerator renders the sample application seeded into new
// cluster manifest folders.
package workloadgenerator

import (
	"fmt"

	"github.com/devantler-tech/kindlab/pkg/io/generator"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
)

const (
	// DefaultName is the name of the sample Deployment and Service.
	DefaultName = "test-app"
	// DefaultImage is the container image of the sample Deployment.
	DefaultImage = "nginx:alpine"
	// DefaultNamespace is where the sample application is deployed.
	DefaultNamespace = "default"

	httpPort = 80
)

// App describes the sample application.
type App struct {
	Name      string
	Namespace string
	Image     string
	Replicas  int32
}

// DefaultApp returns the sample application seeded by init.
func DefaultApp() App {
	return App{
		Name:      DefaultName,
		Namespace: DefaultNamespace,
		Image:     DefaultImage,
		Replicas:  1,
	}
}

// WorkloadGenerator generates the Deployment and LoadBalancer Service of an App.
type WorkloadGenerator struct{}

var _ generator.Generator[App] = (*WorkloadGenerator)(nil)

// NewWorkloadGenerator creates a WorkloadGenerator.
func NewWorkloadGenerator() *WorkloadGenerator {
	return &WorkloadGenerator{}
}

// Build returns the Deployment and its LoadBalancer Service.
func Build(app App) (*appsv1.Deployment, *corev1.Service) {
	labels := map[string]string{"app": app.Name}

	deployment := &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      app.Name,
			Namespace: app.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(app.Replicas),
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  app.Name,
							Image: app.Image,
							Ports: []corev1.ContainerPort{
								{Name: "http", ContainerPort: httpPort},
							},
						},
					},
				},
			},
		},
	}

	service := &corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      app.Name,
			Namespace: app.Namespace,
			Labels:    labels,
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeLoadBalancer,
			Selector: labels,
			Ports: []corev1.ServicePort{
				{
					Name:       "http",
					Port:       httpPort,
					TargetPort: intstr.FromString("http"),
				},
			},
		},
	}

	return deployment, service
}

// Generate renders the sample application manifest.
func (g *WorkloadGenerator) Generate(app App, opts generator.Options) (string, error) {
	deployment, service := Build(app)

	out, err := generator.MarshalDocuments(deployment, service)
	if err != nil {
		return "", fmt.Errorf("marshal sample workload: %w", err)
	}

	out, err = generator.Write(out, opts)
	if err != nil {
		return "", fmt.Errorf("write sample workload: %w", err)
	}

	return out, nil
}
