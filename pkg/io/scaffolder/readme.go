package scaffolder

import (
	"bytes"
	"fmt"
	"text/template"
)

// ReadmeData fills the generated cluster README.
type ReadmeData struct {
	Name       string
	IP         string
	Interface  string
	PoolRange  string
	Context    string
	APIPort    int
	Kubeconfig string
}

var readmeTemplate = template.Must(template.New("readme").Parse(`# {{ .Name }}

Local kind cluster managed by kindlab.

| Setting | Value |
|---|---|
| Cluster IP | {{ .IP }} (alias on {{ .Interface }}) |
| API server | https://{{ .IP }}:{{ .APIPort }} |
| Kube context | {{ .Context }} |
| LoadBalancer pool | {{ .PoolRange }} |

## Layout

- config/cluster.env: network settings, edit by hand if needed
- config/kind-config.yaml: kind cluster configuration
- config/metallb-config.yaml: MetalLB address pool
- {{ .Kubeconfig }}: written when the cluster is created
- manifests/: applied in filename order once MetalLB is ready

## Usage

    kindlab create {{ .Name }}
    kubectl --kubeconfig {{ .Kubeconfig }} get nodes
    kindlab status {{ .Name }}
    kindlab delete {{ .Name }}
`))

// RenderReadme renders the README of a cluster directory.
func RenderReadme(data ReadmeData) (string, error) {
	var buf bytes.Buffer

	err := readmeTemplate.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("render readme: %w", err)
	}

	return buf.String(), nil
}
