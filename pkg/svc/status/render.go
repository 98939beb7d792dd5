package status

import (
	"io"

	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Render prints reports for the operator.
func Render(writer io.Writer, reports []ClusterReport) {
	if len(reports) == 0 {
		notify.Infof(writer, "no clusters found")

		return
	}

	for _, report := range reports {
		renderOne(writer, report)
	}
}

func renderOne(writer io.Writer, report ClusterReport) {
	notify.Titlef(writer, "📦", "%s", report.Name)

	if report.ConfigLoaded() {
		notify.Successf(writer, "configuration loaded: ip %s on %s (subnet %s, gateway %s)",
			report.Config.IP, report.Config.Interface, report.Config.Subnet, report.Config.Gateway)
	} else {
		notify.Errorf(writer, "configuration: %s", report.ConfigError)
	}

	switch {
	case report.RegistrationError != "":
		notify.Warningf(writer, "kind registration unknown: %s", report.RegistrationError)
	case report.Registered:
		notify.Successf(writer, "cluster registered in kind")
	default:
		notify.Warningf(writer, "cluster absent")
	}

	switch {
	case report.Reachable && report.ReachabilityError != "":
		notify.Warningf(writer, "API server reachable, node count unknown: %s", report.ReachabilityError)
	case report.Reachable:
		notify.Successf(writer, "API server reachable, %d/%d nodes ready", report.Nodes.Ready, report.Nodes.Total)
	default:
		notify.Warningf(writer, "API server unreachable: %s", report.ReachabilityError)
	}

	if report.ContainerIP != "" {
		notify.Infof(writer, "control-plane container ip %s", report.ContainerIP)
	}

	switch {
	case report.ManifestsError != "":
		notify.Warningf(writer, "manifests: %s", report.ManifestsError)
	case report.ManifestsDirPresent:
		notify.Infof(writer, "manifests directory present with %d file(s)", report.ManifestCount)
	default:
		notify.Infof(writer, "manifests directory absent")
	}
}
