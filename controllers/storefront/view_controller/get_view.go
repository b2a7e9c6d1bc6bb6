package view_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/view"
)

// GetView godoc
// @Summary Render the product grid
// @Description Render the session's current display state (loading, results, empty, or error) as an HTML fragment. On the first render the grid is populated from the current filters.
// @Tags Storefront - View
// @Produce html
// @Success 200 {string} string "Product grid fragment"
// @Failure 401 {object} models.ApiResponse "No valid view session"
// @Router /store/view/products [get]
func (ctl *Controller) GetView(c *gin.Context) {
	session, ok := ctl.sessionFromRequest(c)
	if !ok {
		return
	}

	// A fresh session has never queried; populate it before rendering so
	// the visitor does not stare at a loading state forever.
	if session.State().Kind == view.StateLoading && session.Filters().IsNeutral() {
		session.Retry(c.Request.Context())
	}

	fragment, err := ctl.renderer.RenderState(session)
	ctl.renderHTML(c, fragment, err)
}
