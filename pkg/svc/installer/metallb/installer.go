package metallbinstaller

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/devantler-tech/kindlab/pkg/client/kubectl"
	metallbgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/metallb"
	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Defaults for Options.
const (
	DefaultVersion      = "0.14.9"
	DefaultWaitTimeout  = 10 * time.Minute
	DefaultRetryBackoff = 15 * time.Second
)

// ManifestURL returns the upstream native manifest of MetalLB version (without the v prefix).
func ManifestURL(version string) string {
	return fmt.Sprintf(
		"https://raw.githubusercontent.com/metallb/metallb/v%s/config/manifests/metallb-native.yaml",
		version,
	)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options tune the installation.
type Options struct {
	Version string
	// WaitTimeout bounds the wait for the controller pods.
	WaitTimeout time.Duration
	// RetryBackoff is the pause before the single retry of the pool apply.
	RetryBackoff time.Duration
	// Sleep defaults to a context-aware timer.
	Sleep SleepFunc
}

// Installer applies MetalLB and the cluster's address pool.
type Installer struct {
	client  kubectl.Interface
	fetcher Fetcher
	opts    Options
	writer  io.Writer
}

// NewInstaller creates an Installer. An empty Version, a non-positive WaitTimeout and a
// negative RetryBackoff take the package defaults; a zero RetryBackoff retries at once.
func NewInstaller(client kubectl.Interface, fetcher Fetcher, opts Options, writer io.Writer) *Installer {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}

	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = DefaultWaitTimeout
	}

	if opts.RetryBackoff < 0 {
		opts.RetryBackoff = DefaultRetryBackoff
	}

	if opts.Sleep == nil {
		opts.Sleep = sleep
	}

	return &Installer{client: client, fetcher: fetcher, opts: opts, writer: writer}
}

// Install applies the MetalLB manifests, waits for the controller pods and
// then applies poolManifest.
//
// A readiness timeout is fatal since nothing later works without MetalLB.
func (i *Installer) Install(ctx context.Context, target k8s.Target, poolManifest []byte) error {
	url := ManifestURL(i.opts.Version)

	notify.Activityf(i.writer, "installing MetalLB v%s", i.opts.Version)

	manifest, err := i.fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("%w: fetch metallb manifest: %w", clustererr.ErrExternalCommandFailed, err)
	}

	_, err = i.client.Apply(ctx, target, manifest)
	if err != nil {
		return fmt.Errorf("%w: apply metallb manifest: %w", clustererr.ErrExternalCommandFailed, err)
	}

	notify.Activityf(i.writer, "waiting up to %s for MetalLB pods", i.opts.WaitTimeout)

	err = i.client.WaitForPodsReady(ctx, target, metallbgenerator.Namespace, i.opts.WaitTimeout)
	if err != nil {
		return fmt.Errorf("%w: wait for metallb: %w", clustererr.ErrExternalCommandFailed, err)
	}

	return i.ApplyPool(ctx, target, poolManifest)
}

// ApplyPool applies the address pool manifest, retrying exactly once after the
// backoff. The first attempt can race the MetalLB validating webhook.
func (i *Installer) ApplyPool(ctx context.Context, target k8s.Target, poolManifest []byte) error {
	_, err := i.client.Apply(ctx, target, poolManifest)
	if err == nil {
		return nil
	}

	notify.Warningf(i.writer, "address pool apply failed, retrying in %s: %v", i.opts.RetryBackoff, err)

	sleepErr := i.opts.Sleep(ctx, i.opts.RetryBackoff)
	if sleepErr != nil {
		return fmt.Errorf("wait before retrying address pool: %w", sleepErr)
	}

	_, err = i.client.Apply(ctx, target, poolManifest)
	if err != nil {
		return fmt.Errorf("%w: apply metallb address pool: %w", clustererr.ErrExternalCommandFailed, err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // caller wraps
	case <-timer.C:
		return nil
	}
}
