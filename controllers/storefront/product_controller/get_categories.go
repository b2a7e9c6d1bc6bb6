package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// GetCategories godoc
// @Summary Get categories
// @Description Retrieve the deduplicated, lexicographically sorted category names of the catalog.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Router /store/categories [get]
func (ctl *Controller) GetCategories(c *gin.Context) {
	categories := ctl.store.Categories(c.Request.Context())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
