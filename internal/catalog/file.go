package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"leadpath/internal/domain"

	"gopkg.in/yaml.v3"
)

type fileRepository struct {
	path string
}

// NewFileRepository reads the catalog from a YAML document with top-level
// roles, goals and paths keys. The file is read on every load.
func NewFileRepository(path string) domain.CatalogRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", r.path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document. Unknown keys are rejected and
// difficulty names are accepted in any casing.
func Parse(data []byte) (*domain.Catalog, error) {
	var c domain.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i := range c.Paths {
		difficulty, err := domain.ParseDifficulty(string(c.Paths[i].Difficulty))
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", c.Paths[i].ID, err)
		}
		c.Paths[i].Difficulty = difficulty
	}
	return &c, nil
}
