package view_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// OpenModal godoc
// @Summary Open the review modal
// @Description Open the review modal for a product and render its detail fragment. An unknown id is a silent no-op for the grid: the modal simply does not open.
// @Tags Storefront - View
// @Produce html
// @Param id path string true "Product ID"
// @Success 200 {string} string "Modal fragment"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/modal/{id} [post]
func (ctl *Controller) OpenModal(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	if !session.OpenModal(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	product, _ := session.ModalProduct()
	fragment, err := ctl.renderer.RenderModal(product)
	ctl.renderHTML(c, fragment, err)
}
