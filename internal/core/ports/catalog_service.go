package ports

import "context"

// LabeledValue pairs a machine value with its Korean display label. Labels
// belong to the presentation layer, not the domain enums.
type LabeledValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog holds the four lookup lists the views render filters from.
type Catalog struct {
	Categories       []string       `json:"categories"`
	Locations        []string       `json:"locations"`
	EmploymentTypes  []LabeledValue `json:"employment_types"`
	ExperienceLevels []LabeledValue `json:"experience_levels"`
}

// CatalogService exposes the read-only lookup lists.
type CatalogService interface {
	Catalog(ctx context.Context) (*Catalog, error)
}
