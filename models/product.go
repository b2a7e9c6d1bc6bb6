package models

import "strings"

// ═══════════════════════════════════════════════════════════
// Catalog Document Types
// ═══════════════════════════════════════════════════════════

// Review holds the editorial review rendered inside the product modal.
type Review struct {
	Summary string   `json:"summary"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	Verdict string   `json:"verdict"`
}

// Product is a single catalog entry. The collection is immutable once
// loaded, so products are passed around by value.
//
// Price fields are pre-formatted display strings, not numerics; Discount
// is a percentage string where "" or "0%" means no discount.
type Product struct {
	ID               string  `json:"id" binding:"required" example:"p1"`
	Title            string  `json:"title" binding:"required" example:"SmartPhone X"`
	ShortDescription string  `json:"shortDescription" example:"Flagship phone with a week-long battery"`
	Category         string  `json:"category" example:"Phones"`
	Price            string  `json:"price" example:"$699"`
	OriginalPrice    string  `json:"originalPrice,omitempty" example:"$899"`
	Discount         string  `json:"discount,omitempty" example:"22%"`
	Rating           float64 `json:"rating" binding:"min=0,max=5" example:"4.7"`
	Featured         bool    `json:"featured"`
	Image            string  `json:"image" example:"📱"`
	AffiliateLink    string  `json:"affiliateLink" example:"https://partner.example.com/go/p1"`
	Review           Review  `json:"review"`
}

// HasDiscount reports whether the product carries a real markdown.
func (p Product) HasDiscount() bool {
	d := strings.TrimSpace(p.Discount)
	return d != "" && d != "0%"
}

// CatalogDocument is the wire shape of the catalog source.
type CatalogDocument struct {
	Products []Product `json:"products"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// CatalogStats is the aggregate snapshot served by the stats endpoint.
type CatalogStats struct {
	TotalProducts        int     `json:"total_products"`
	FeaturedProducts     int     `json:"featured_products"`
	AverageRating        float64 `json:"average_rating"`
	TotalCategories      int     `json:"total_categories"`
	ProductsWithDiscount int     `json:"products_with_discount"`
	DiscountPercentage   int     `json:"discount_percentage"`
}
