package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// GetProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve catalog products with optional category, search, and minimum-rating filters, applied conjunctively.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category filter (exact match, 'all' for no constraint)"
// @Param q query string false "Search query (title, description, or category substring, case-insensitive)"
// @Param minRating query number false "Minimum rating threshold (0-5)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	minRating, _ := strconv.ParseFloat(c.DefaultQuery("minRating", "0"), 64)
	criteria := catalog.Criteria{
		Category:  c.DefaultQuery("category", "all"),
		Search:    c.Query("q"),
		MinRating: minRating,
	}

	products := ctl.store.Filter(c.Request.Context(), criteria)
	pageItems, meta := paginate(products, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", pageItems, meta))
}
