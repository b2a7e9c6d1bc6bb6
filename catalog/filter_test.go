package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

func TestFilterNeutralCriteriaIsIdentity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	result := store.Filter(ctx, Criteria{Category: "all", Search: "", MinRating: 0})
	assert.Equal(t, store.GetAll(ctx), result)
}

func TestFilterConjunction(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	criteria := Criteria{Category: "Audio", Search: "mic", MinRating: 4}
	result := store.Filter(ctx, criteria)

	require.Len(t, result, 1)
	assert.Equal(t, "p4", result[0].ID)

	// The result is a subset of each independent predicate.
	assert.Subset(t, ids(store.GetByCategory(ctx, criteria.Category)), ids(result))
	assert.Subset(t, ids(store.Search(ctx, criteria.Search)), ids(result))
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Rating, criteria.MinRating)
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	store, _ := newTestStore(t)

	result := store.Filter(context.Background(), Criteria{MinRating: 4})
	assert.Equal(t, []string{"p1", "p2", "p4"}, ids(result))
}

func TestFilterEmptyResultIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t)

	result := store.Filter(context.Background(), Criteria{Category: "Phones", Search: "laptop"})
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterRatingThreshold(t *testing.T) {
	store, _ := newTestStore(t)

	result := store.Filter(context.Background(), Criteria{Category: "Audio", MinRating: 5})
	assert.Equal(t, []string{"p4"}, ids(result))
}

func TestCriteriaIsNeutral(t *testing.T) {
	assert.True(t, Criteria{}.IsNeutral())
	assert.True(t, Criteria{Category: "all", Search: "  "}.IsNeutral())
	assert.False(t, Criteria{Category: "Audio"}.IsNeutral())
	assert.False(t, Criteria{Search: "mic"}.IsNeutral())
	assert.False(t, Criteria{MinRating: 1}.IsNeutral())
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
