// Package domain contains the core business entities and interfaces.
package domain

import "context"

// Catalogue represents a single catalogue row. The ID is assigned by storage
// on insert and never changes afterwards. EffectiveFrom and EffectiveTo carry
// calendar dates in YYYY-MM-DD form; Status is free text by convention
// ("Active"/"Inactive") and is not validated server-side.
type Catalogue struct {
	ID            int64  `json:"catalogue_id"`
	Name          string `json:"catalogue_name"`
	Description   string `json:"catalogue_description"`
	EffectiveFrom string `json:"effective_from"`
	EffectiveTo   string `json:"effective_to"`
	Status        string `json:"status"`
}

// CatalogueRepository defines the port for catalogue persistence operations.
// Lookups return a nil record, not an error, when the id does not exist.
type CatalogueRepository interface {
	Create(ctx context.Context, c Catalogue) (int64, error)
	GetByID(ctx context.Context, id int64) (*Catalogue, error)
	GetAll(ctx context.Context) ([]Catalogue, error)
	UpdateByID(ctx context.Context, id int64, c Catalogue) (int64, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
