package service

import (
	"context"

	"github.com/quickalba/job-board-system/internal/core/ports"
)

// CatalogService serves the static lookup lists the filter panel renders.
// The catalog is fixed at construction and safe for concurrent reads.
type CatalogService struct {
	catalog ports.Catalog
}

func NewCatalogService(catalog ports.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) Catalog(_ context.Context) (*ports.Catalog, error) {
	c := s.catalog
	return &c, nil
}
