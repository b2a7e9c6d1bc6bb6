package view_controller

import (
	"github.com/gin-gonic/gin"
)

type minRatingRequest struct {
	MinRating float64 `json:"minRating" form:"minRating"`
}

// SetMinRating godoc
// @Summary Set the minimum-rating filter
// @Description Update the session's rating floor (0 clears the constraint) and re-render the grid immediately.
// @Tags Storefront - View
// @Accept json
// @Produce html
// @Param body body minRatingRequest true "Minimum rating"
// @Success 200 {string} string "Product grid fragment"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/filters/rating [put]
func (ctl *Controller) SetMinRating(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	var req minRatingRequest
	_ = c.ShouldBind(&req)

	session.SetMinRating(c.Request.Context(), req.MinRating)

	fragment, err := ctl.renderer.RenderState(session)
	ctl.renderHTML(c, fragment, err)
}
