package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// GetProductStats godoc
// @Summary Get catalog statistics
// @Description Returns aggregate counts: total and featured products, mean rating, category count, and discount coverage.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/products/stats [get]
func (ctl *Controller) GetProductStats(c *gin.Context) {
	stats := ctl.store.Statistics(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog statistics fetched successfully", stats))
}
