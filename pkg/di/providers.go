package di

import (
	"io"

	"github.com/devantler-tech/kindlab/pkg/cli/ui/confirm"
	"github.com/devantler-tech/kindlab/pkg/client/docker"
	"github.com/devantler-tech/kindlab/pkg/client/kubectl"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/svc/applier"
	metallbinstaller "github.com/devantler-tech/kindlab/pkg/svc/installer/metallb"
	"github.com/devantler-tech/kindlab/pkg/svc/network"
	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/devantler-tech/kindlab/pkg/svc/prereq"
	kindprovisioner "github.com/devantler-tech/kindlab/pkg/svc/provisioner/cluster/kind"
	"github.com/devantler-tech/kindlab/pkg/svc/status"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
)

// Streams are the operator's terminal.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// NewRuntime constructs the runtime used by the root command. Settings and
// streams are supplied per invocation with WithInvocation.
func NewRuntime() *Runtime {
	return New(
		provideLogger,
		provideDockerEngine,
		provideNetworkTool,
		provideClusterTool,
		provideAPIClient,
		provideManifestFetcher,
		provideDecider,
		provideOrchestrator,
	)
}

// WithInvocation registers the values resolved from the command line.
func WithInvocation(settings configmanager.Settings, streams Streams) Module {
	return func(i Injector) error {
		do.ProvideValue(i, settings)
		do.ProvideValue(i, streams)

		return nil
	}
}

func provideLogger(i Injector) error {
	do.Provide(i, func(Injector) (*logrus.Entry, error) {
		return logrus.NewEntry(logrus.StandardLogger()), nil
	})

	return nil
}

func provideDockerEngine(i Injector) error {
	do.Provide(i, func(Injector) (*docker.Engine, error) {
		return docker.NewEngineFromEnv()
	})

	return nil
}

func provideNetworkTool(i Injector) error {
	do.Provide(i, func(Injector) (network.Tool, error) {
		return network.NewNetlinkTool(), nil
	})

	return nil
}

func provideClusterTool(i Injector) error {
	do.Provide(i, func(i Injector) (kindprovisioner.ClusterTool, error) {
		logger, err := do.Invoke[*logrus.Entry](i)
		if err != nil {
			return nil, err
		}

		return kindprovisioner.NewKindTool(logger), nil
	})

	return nil
}

func provideAPIClient(i Injector) error {
	do.Provide(i, func(Injector) (kubectl.Interface, error) {
		return kubectl.NewClient(), nil
	})

	return nil
}

func provideManifestFetcher(i Injector) error {
	do.Provide(i, func(Injector) (metallbinstaller.Fetcher, error) {
		return metallbinstaller.NewHTTPFetcher(nil), nil
	})

	return nil
}

func provideDecider(i Injector) error {
	do.Provide(i, func(i Injector) (confirm.Decider, error) {
		settings, err := do.Invoke[configmanager.Settings](i)
		if err != nil {
			return nil, err
		}

		streams, err := do.Invoke[Streams](i)
		if err != nil {
			return nil, err
		}

		return confirm.NewDecider(settings.Yes, settings.NonInteractive, streams.In, streams.Out), nil
	})

	return nil
}

//nolint:funlen // wiring only
func provideOrchestrator(i Injector) error {
	do.Provide(i, func(i Injector) (*orchestrator.Orchestrator, error) {
		settings, err := do.Invoke[configmanager.Settings](i)
		if err != nil {
			return nil, err
		}

		streams, err := do.Invoke[Streams](i)
		if err != nil {
			return nil, err
		}

		logger := do.MustInvoke[*logrus.Entry](i)
		netTool := do.MustInvoke[network.Tool](i)
		clusterTool := do.MustInvoke[kindprovisioner.ClusterTool](i)
		apiClient := do.MustInvoke[kubectl.Interface](i)
		fetcher := do.MustInvoke[metallbinstaller.Fetcher](i)
		decider := do.MustInvoke[confirm.Decider](i)

		provisioner := kindprovisioner.NewProvisioner(clusterTool, streams.Out)

		deps := orchestrator.Deps{
			Root:        settings.Root,
			Decider:     decider,
			Aliaser:     network.NewAliaser(netTool, streams.Out),
			Provisioner: provisioner,
			Installer: metallbinstaller.NewInstaller(apiClient, fetcher, metallbinstaller.Options{
				Version:      settings.MetalLBVersion,
				WaitTimeout:  settings.LBWaitTimeout,
				RetryBackoff: settings.PoolRetryBackoff,
			}, streams.Out),
			Applier: applier.NewApplier(apiClient, streams.Out),
			Writer:  streams.Out,
			Logger:  logger,
		}

		engine, err := do.Invoke[*docker.Engine](i)
		if err != nil {
			logger.WithError(err).Debug("docker client unavailable")

			deps.Reporter = status.NewReporter(settings.Root, provisioner, apiClient, nil)
			deps.Checker = prereq.NewChecker(nil, nil, streams.Out)

			return orchestrator.New(deps), nil
		}

		deps.Reporter = status.NewReporter(settings.Root, provisioner, apiClient, engine)
		deps.Checker = prereq.NewChecker(engine, nil, streams.Out)
		deps.Networks = engine

		return orchestrator.New(deps), nil
	})

	return nil
}
