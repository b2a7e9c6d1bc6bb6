package view_controller

import (
	"github.com/gin-gonic/gin"
)

type categoryFilterRequest struct {
	Category string `json:"category" form:"category"`
}

// SetCategoryFilter godoc
// @Summary Set the category filter
// @Description Update the session's active category (empty or "all" clears the constraint) and re-render the grid immediately.
// @Tags Storefront - View
// @Accept json
// @Produce html
// @Param body body categoryFilterRequest true "Category"
// @Success 200 {string} string "Product grid fragment"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/filters/category [put]
func (ctl *Controller) SetCategoryFilter(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	var req categoryFilterRequest
	_ = c.ShouldBind(&req)

	session.SetCategoryFilter(c.Request.Context(), req.Category)

	fragment, err := ctl.renderer.RenderState(session)
	ctl.renderHTML(c, fragment, err)
}
