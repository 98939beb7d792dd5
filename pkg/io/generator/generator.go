// Package generator renders the files kindlab writes into a cluster directory.
package generator

import (
	"fmt"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"sigs.k8s.io/yaml"
)

// Generator is implemented by each file generator.
type Generator[T any] interface {
	Generate(model T, opts Options) (string, error)
}

// Options controls where generated content goes.
// An empty Output only returns the content.
type Options struct {
	Output string
	Force  bool
}

// documentSeparator joins documents in a multi-document YAML file.
const documentSeparator = "---\n"

// MarshalDocuments marshals each object to YAML and joins them into one stream.
func MarshalDocuments(objects ...any) (string, error) {
	docs := make([]string, 0, len(objects))

	for _, obj := range objects {
		out, err := yaml.Marshal(obj)
		if err != nil {
			return "", fmt.Errorf("marshal %T: %w", obj, err)
		}

		docs = append(docs, string(out))
	}

	return strings.Join(docs, documentSeparator), nil
}

// Write stores content according to opts and returns it unchanged.
func Write(content string, opts Options) (string, error) {
	if opts.Output == "" {
		return content, nil
	}

	_, err := fsutil.TryWriteFile(content, opts.Output, opts.Force)
	if err != nil {
		return "", err
	}

	return content, nil
}
