package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description Retrieve the featured subsequence of the catalog, preserving catalog order.
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Featured products fetched successfully"
// @Router /store/products/featured [get]
func (ctl *Controller) GetFeaturedProducts(c *gin.Context) {
	featured := ctl.store.GetFeatured(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", featured))
}
