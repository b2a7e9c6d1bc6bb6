package view_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
	"github.com/TechNest-Affiliates/technest-storefront-backend/view"
)

// CreateSession godoc
// @Summary Create a view session
// @Description Start a storefront view session with default filters (category "all", empty search, no rating floor). The session id is set as a cookie.
// @Tags Storefront - View
// @Produce json
// @Success 201 {object} models.ApiResponse "View session created"
// @Router /store/view/session [post]
func (ctl *Controller) CreateSession(c *gin.Context) {
	session := view.NewSession(ctl.catalog, ctl.debounce)
	ctl.sessions.Put(session)

	c.SetCookie(SessionCookie, session.ID.String(), 0, "/", "", false, true)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "View session created", gin.H{
		"session_id": session.ID.String(),
		"filters":    session.Filters(),
	}))
}
