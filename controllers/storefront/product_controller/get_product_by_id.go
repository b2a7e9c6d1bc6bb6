package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// GetProductByID godoc
// @Summary Get a single product
// @Description Retrieve one product, including its full review, by exact id.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func (ctl *Controller) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := ctl.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
