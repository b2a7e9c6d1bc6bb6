package view_controller

import (
	"github.com/gin-gonic/gin"
)

type searchTextRequest struct {
	Query string `json:"q" form:"q"`
}

// SetSearchText godoc
// @Summary Set the search text
// @Description Update the session's search text. The query is debounced: rapid successive updates collapse into a single query carrying the final text, and the grid stays in the loading state until it fires.
// @Tags Storefront - View
// @Accept json
// @Produce html
// @Param body body searchTextRequest true "Search text"
// @Success 200 {string} string "Loading fragment (query pending)"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/filters/search [put]
func (ctl *Controller) SetSearchText(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	var req searchTextRequest
	_ = c.ShouldBind(&req)

	session.SetSearchText(req.Query)

	fragment, err := ctl.renderer.RenderState(session)
	ctl.renderHTML(c, fragment, err)
}
