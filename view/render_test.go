package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

func TestRenderCardsInInputOrder(t *testing.T) {
	r := NewRenderer()
	products := []models.Product{
		{ID: "p2", Title: "AeroBook Pro", Price: "$1,299", Rating: 4.5},
		{ID: "p1", Title: "SmartPhone X", Price: "$699", Rating: 4.7, Featured: true, Discount: "22%", OriginalPrice: "$899"},
	}

	html, err := r.RenderCards(products, nil)
	require.NoError(t, err)

	assert.Contains(t, html, `data-product-id="p2"`)
	assert.Contains(t, html, `data-product-id="p1"`)
	assert.Less(t, strings.Index(html, "AeroBook Pro"), strings.Index(html, "SmartPhone X"), "cards render in input order")

	assert.Contains(t, html, "badge-featured")
	assert.Contains(t, html, "badge-discount")
	assert.Contains(t, html, "$899")
}

func TestRenderCardsRevealIsOneShot(t *testing.T) {
	r := NewRenderer()
	s := NewSession(&fakeCatalog{}, 0)
	defer s.Close()

	products := []models.Product{
		{ID: "p1", Title: "SmartPhone X"},
		{ID: "p2", Title: "AeroBook Pro"},
	}

	first, err := r.RenderCards(products, s)
	require.NoError(t, err)
	assert.Contains(t, first, "reveal")
	assert.Contains(t, first, "animation-delay:0ms")
	assert.Contains(t, first, "animation-delay:100ms", "reveal is staggered per card")

	second, err := r.RenderCards(products, s)
	require.NoError(t, err)
	assert.NotContains(t, second, "reveal", "the reveal animation never re-triggers")
}

func TestRenderModal(t *testing.T) {
	r := NewRenderer()
	p := models.Product{
		ID: "p1", Title: "SmartPhone X", Price: "$699", Rating: 4.7,
		AffiliateLink: "https://partner.example.com/go/p1",
		Review: models.Review{
			Summary: "The essentials, nailed.",
			Pros:    []string{"Battery", "Camera"},
			Cons:    []string{"No jack"},
			Verdict: "Best under $700.",
		},
	}

	html, err := r.RenderModal(p)
	require.NoError(t, err)
	assert.Contains(t, html, "The essentials, nailed.")
	assert.Contains(t, html, "<li>Battery</li>")
	assert.Contains(t, html, "<li>No jack</li>")
	assert.Contains(t, html, "Best under $700.")
	assert.Contains(t, html, `href="https://partner.example.com/go/p1"`)
	assert.Contains(t, html, `rel="nofollow sponsored"`)
}

func TestRenderStateFragments(t *testing.T) {
	r := NewRenderer()
	cat := &fakeCatalog{}
	s := NewSession(cat, 0)
	defer s.Close()

	// Fresh session: loading.
	html, err := r.RenderState(s)
	require.NoError(t, err)
	assert.Contains(t, html, "grid-loading")

	// Empty results.
	s.Retry(context.Background())
	html, err = r.RenderState(s)
	require.NoError(t, err)
	assert.Contains(t, html, "grid-empty")
}

func TestStarRating(t *testing.T) {
	assert.Equal(t, "★★★★★", starRating(5))
	assert.Equal(t, "★★★★☆", starRating(4.3))
	assert.Equal(t, "☆☆☆☆☆", starRating(0))
}
