// internal/catalog/source.go
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// Source produces a validated dataset.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(embeddedCatalog)
}

// FileSource reads the dataset from a YAML file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// ObjectFetcher reads an object from remote storage.
type ObjectFetcher interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// ObjectSource reads the dataset from an object store such as S3.
type ObjectSource struct {
	Fetcher ObjectFetcher
	Key     string
}

func (s ObjectSource) Name() string { return "object:" + s.Key }

func (s ObjectSource) Load(ctx context.Context) (*Dataset, error) {
	data, err := s.Fetcher.GetObject(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog object: %w", err)
	}
	return Parse(data)
}
