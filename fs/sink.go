// Package fs provides a file-based implementation of policyscan.Sink.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/policyscan"
)

// Ensure Sink implements policyscan.Sink at compile time.
var _ policyscan.Sink = (*Sink)(nil)

// Sink writes blobs to a directory tree. Each collection is a subdirectory;
// each item is a file with an extension derived from the content type. The
// returned reference is the file path.
type Sink struct {
	baseDir string
}

// NewSink creates a new Sink that writes under the given base directory.
func NewSink(baseDir string) *Sink {
	return &Sink{baseDir: baseDir}
}

// Put writes the blob to disk and returns its path.
func (s *Sink) Put(ctx context.Context, collection, item string, data []byte, contentType string) (string, error) {
	if item == "" {
		return "", policyscan.Errorf(policyscan.EINVALID, "sink item key required")
	}

	path := filepath.Join(s.baseDir, collection, item+extensionFor(contentType))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "application/json":
		return ".json"
	case "text/plain":
		return ".txt"
	default:
		return ".bin"
	}
}
