package view_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// CloseModal godoc
// @Summary Close the review modal
// @Description Close the session's review modal. Closing an already-closed modal is a no-op.
// @Tags Storefront - View
// @Produce json
// @Success 200 {object} models.ApiResponse "Modal closed"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/modal [delete]
func (ctl *Controller) CloseModal(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	session.CloseModal()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Modal closed", gin.H{"is_modal_open": false}))
}
