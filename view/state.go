package view

import (
	"context"

	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// StateKind enumerates the mutually exclusive display states of the product
// grid. Exactly one is active at a time.
type StateKind string

const (
	StateLoading        StateKind = "loading"
	StateShowingResults StateKind = "results"
	StateEmptyResults   StateKind = "empty"
	StateError          StateKind = "error"
)

// DisplayState is a snapshot of what the product grid should show.
type DisplayState struct {
	Kind     StateKind        `json:"kind"`
	Products []models.Product `json:"products,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// Catalog is the query contract the view layer depends on. The store never
// dictates view behavior; the view only narrows and looks up.
//
// Filter carries an error return so a failing backing query surfaces as the
// grid's error state instead of a panic.
type Catalog interface {
	Filter(ctx context.Context, cr catalog.Criteria) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
}

// StoreCatalog adapts *catalog.Store to the Catalog contract. Store queries
// are total (a failed load degrades to an empty collection), so Filter
// never errors here.
type StoreCatalog struct {
	Store *catalog.Store
}

func (sc StoreCatalog) Filter(ctx context.Context, cr catalog.Criteria) ([]models.Product, error) {
	return sc.Store.Filter(ctx, cr), nil
}

func (sc StoreCatalog) GetByID(ctx context.Context, id string) (models.Product, error) {
	return sc.Store.GetByID(ctx, id)
}
