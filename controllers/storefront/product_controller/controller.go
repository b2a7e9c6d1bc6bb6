package product_controller

import (
	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
)

// Controller serves the public JSON query surface over the catalog store.
// The store is injected so handlers never reach for ambient globals.
type Controller struct {
	store *catalog.Store
}

func New(store *catalog.Store) *Controller {
	return &Controller{store: store}
}
