package catalog

import (
	"context"
	"strings"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// Criteria is the conjunctive constraint applied by Filter. Zero values
// impose no constraint: category "all"/"" matches everything, an empty
// search string matches everything, and MinRating 0 admits every product.
type Criteria struct {
	Category  string  `json:"category" form:"category"`
	Search    string  `json:"search" form:"q"`
	MinRating float64 `json:"minRating" form:"minRating"`
}

// IsNeutral reports whether the criteria impose no constraint at all.
func (cr Criteria) IsNeutral() bool {
	return (cr.Category == "" || cr.Category == "all") &&
		strings.TrimSpace(cr.Search) == "" &&
		cr.MinRating <= 0
}

// Filter applies category, search, and minimum-rating narrowing passes in
// that fixed order. Each pass narrows the previous result, so the outcome
// is the intersection of the three predicates with load order preserved.
// An empty result is a valid outcome, not an error.
func (s *Store) Filter(ctx context.Context, cr Criteria) []models.Product {
	result := s.GetByCategory(ctx, cr.Category)

	if query := strings.ToLower(strings.TrimSpace(cr.Search)); query != "" {
		narrowed := make([]models.Product, 0, len(result))
		for _, p := range result {
			if matchesQuery(p, query) {
				narrowed = append(narrowed, p)
			}
		}
		result = narrowed
	}

	if cr.MinRating > 0 {
		narrowed := make([]models.Product, 0, len(result))
		for _, p := range result {
			if p.Rating >= cr.MinRating {
				narrowed = append(narrowed, p)
			}
		}
		result = narrowed
	}

	return result
}
