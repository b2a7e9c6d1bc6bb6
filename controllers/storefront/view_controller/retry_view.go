package view_controller

import (
	"github.com/gin-gonic/gin"
)

// RetryView godoc
// @Summary Retry the last query
// @Description Re-issue the session's current filter query, typically after the grid entered the error state.
// @Tags Storefront - View
// @Produce html
// @Success 200 {string} string "Product grid fragment"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/retry [post]
func (ctl *Controller) RetryView(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	session.Retry(c.Request.Context())

	fragment, err := ctl.renderer.RenderState(session)
	ctl.renderHTML(c, fragment, err)
}
