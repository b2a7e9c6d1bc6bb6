package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// ErrProductNotFound is returned by GetByID for unknown ids. A miss is a
// defined outcome, not a failure.
var ErrProductNotFound = errors.New("product not found")

// Store owns the single in-memory product collection. The collection is
// retrieved at most once per session and never mutated afterwards, so every
// query method is safe for concurrent use without locking once Load has
// returned.
//
// Retrieval failure leaves the store in a terminal loaded-empty state:
// queries keep answering (with empty results) instead of propagating the
// failure. Load and LoadErr expose the underlying error so callers that
// care can still tell a failed load from a genuinely empty catalog.
type Store struct {
	source Source
	log    *logrus.Entry

	once       sync.Once
	products   []models.Product
	categories []string
	loadErr    error
}

// NewStore builds an unloaded store over the given source. The collection
// is fetched lazily on first query, or eagerly via Load.
func NewStore(source Source) *Store {
	return &Store{
		source:   source,
		log:      logrus.WithField("component", "catalog"),
		products: make([]models.Product, 0),
	}
}

// Load retrieves the catalog exactly once. Concurrent callers block on the
// same in-flight retrieval and all observe the same eventual result. The
// returned error reports retrieval/validation failure; the store itself
// has already degraded to an empty collection by then.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() { s.doLoad(ctx) })
	return s.loadErr
}

// LoadErr reports the recorded retrieval failure, if any, without
// triggering a load.
func (s *Store) LoadErr() error {
	return s.loadErr
}

func (s *Store) doLoad(ctx context.Context) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		s.fail(fmt.Errorf("retrieve catalog: %w", err))
		return
	}

	products, err := ParseDocument(data)
	if err != nil {
		s.fail(fmt.Errorf("parse catalog: %w", err))
		return
	}

	if err := validate(products); err != nil {
		s.fail(fmt.Errorf("validate catalog: %w", err))
		return
	}

	s.products = products
	s.categories = deriveCategories(products)
	s.log.WithFields(logrus.Fields{
		"products":   len(s.products),
		"categories": len(s.categories),
	}).Info("✅ Catalog loaded")
}

// fail records the error and pins the store in the loaded-empty state.
func (s *Store) fail(err error) {
	s.loadErr = err
	s.products = make([]models.Product, 0)
	s.categories = make([]string, 0)
	s.log.WithError(err).Warn("⚠️ Catalog load failed, serving empty catalog")
}

// validate enforces the id-uniqueness and rating-range invariants of the
// document. A violated invariant is treated like malformed content.
func validate(products []models.Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product %q has no id", p.Title)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("product %q rating %.2f out of range", p.ID, p.Rating)
		}
	}
	return nil
}

func deriveCategories(products []models.Product) []string {
	set := make(map[string]struct{})
	for _, p := range products {
		if p.Category != "" {
			set[p.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(set))
	for name := range set {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	return categories
}

// ─────────────────────────────────────────────────────────────
// Queries (read-only, lazy-loading)
// ─────────────────────────────────────────────────────────────

// GetAll returns the full collection in load order.
func (s *Store) GetAll(ctx context.Context) []models.Product {
	_ = s.Load(ctx)
	return s.products
}

// GetByCategory returns products with an exact, case-sensitive category
// match. "all" and the empty string impose no constraint.
func (s *Store) GetByCategory(ctx context.Context, category string) []models.Product {
	all := s.GetAll(ctx)
	if category == "" || category == "all" {
		return all
	}
	matched := make([]models.Product, 0)
	for _, p := range all {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// GetFeatured returns the featured subsequence, preserving load order.
func (s *Store) GetFeatured(ctx context.Context) []models.Product {
	featured := make([]models.Product, 0)
	for _, p := range s.GetAll(ctx) {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Search matches the query as a case-insensitive substring of title, short
// description, or category. A blank query imposes no constraint.
func (s *Store) Search(ctx context.Context, query string) []models.Product {
	all := s.GetAll(ctx)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}
	matched := make([]models.Product, 0)
	for _, p := range all {
		if matchesQuery(p, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchesQuery expects an already-lowercased query.
func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.ShortDescription), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

// GetByID returns the first product with the exact id, or
// ErrProductNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (models.Product, error) {
	for _, p := range s.GetAll(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

// Categories returns the deduplicated, lexicographically sorted category
// names of the loaded collection.
func (s *Store) Categories(ctx context.Context) []string {
	_ = s.Load(ctx)
	return s.categories
}
