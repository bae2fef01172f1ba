package domain

import "context"

// CatalogRepository loads the reference catalog from its source.
type CatalogRepository interface {
	// LoadCatalog returns the full catalog. Implementations do not validate it.
	LoadCatalog(ctx context.Context) (*Catalog, error)
}
