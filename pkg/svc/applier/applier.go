// Package applier applies the operator-managed manifests folder of a cluster.
package applier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/client/kubectl"
	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Extensions recognised as manifests.
var Extensions = []string{".yaml", ".yml"}

// List returns the manifest file names in dir, sorted. A missing dir yields no files and no error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read manifests directory: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if slices.Contains(Extensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	return names, nil
}

// Applier applies manifest files through the API client.
type Applier struct {
	client kubectl.Interface
	writer io.Writer
}

// NewApplier creates an Applier.
func NewApplier(client kubectl.Interface, writer io.Writer) *Applier {
	return &Applier{client: client, writer: writer}
}

// Apply applies every manifest in dir against target in filename order and
// returns how many files were applied. The first failure stops the loop.
func (a *Applier) Apply(ctx context.Context, target k8s.Target, dir string) (int, error) {
	names, err := List(dir)
	if err != nil {
		return 0, err
	}

	if len(names) == 0 {
		notify.Infof(a.writer, "no manifests to apply in %s", dir)

		return 0, nil
	}

	for applied, name := range names {
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path) //nolint:gosec // path comes from the cluster's own manifests dir
		if err != nil {
			return applied, fmt.Errorf("read manifest %s: %w", name, err)
		}

		notify.Activityf(a.writer, "applying %s", name)

		_, err = a.client.Apply(ctx, target, data)
		if err != nil {
			return applied, fmt.Errorf("%w: apply manifest %s: %w", clustererr.ErrExternalCommandFailed, name, err)
		}
	}

	return len(names), nil
}
