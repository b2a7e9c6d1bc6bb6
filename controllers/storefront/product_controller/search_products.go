package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// SearchProducts godoc
// @Summary Search products
// @Description Search products by title, short description, or category (case-insensitive substring). Returns paginated results.
// @Tags Storefront - Products
// @Produce json
// @Param query query string true "Search keyword"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/products/search [get]
func (ctl *Controller) SearchProducts(c *gin.Context) {
	queryParam := c.Query("query")
	if queryParam == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Query parameter 'query' is required"))
		return
	}

	page, limit := parsePagination(c)

	results := ctl.store.Search(c.Request.Context(), queryParam)
	if len(results) == 0 {
		meta := &models.Pagination{Page: page, Limit: limit, Total: 0, TotalPages: 0}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "No results found", make([]models.Product, 0), meta))
		return
	}

	pageItems, meta := paginate(results, page, limit)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results fetched successfully", pageItems, meta))
}
