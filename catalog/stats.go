package catalog

import (
	"context"
	"math"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// Statistics aggregates the loaded collection. All ratios are guarded
// against an empty catalog.
func (s *Store) Statistics(ctx context.Context) models.CatalogStats {
	all := s.GetAll(ctx)

	stats := models.CatalogStats{
		TotalProducts:   len(all),
		TotalCategories: len(s.Categories(ctx)),
	}

	var ratingSum float64
	for _, p := range all {
		ratingSum += p.Rating
		if p.Featured {
			stats.FeaturedProducts++
		}
		if p.HasDiscount() {
			stats.ProductsWithDiscount++
		}
	}

	if stats.TotalProducts > 0 {
		// mean rating rounded to one decimal place
		stats.AverageRating = math.Round(ratingSum/float64(stats.TotalProducts)*10) / 10
		stats.DiscountPercentage = int(math.Round(
			float64(stats.ProductsWithDiscount) / float64(stats.TotalProducts) * 100,
		))
	}

	return stats
}
