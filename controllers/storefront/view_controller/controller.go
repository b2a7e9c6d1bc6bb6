package view_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	session_cache "github.com/TechNest-Affiliates/technest-storefront-backend/cache"
	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
	"github.com/TechNest-Affiliates/technest-storefront-backend/view"
)

// SessionCookie carries the view-session id between requests.
const SessionCookie = "tn_view_session"

// Controller serves per-visitor view state: the product grid, its filters,
// and the review modal, all as HTML fragments. It owns the session cache
// and hands each session a catalog handle plus the debounce interval.
type Controller struct {
	catalog  view.Catalog
	sessions *session_cache.Cache
	renderer *view.Renderer
	debounce time.Duration
}

func New(cat view.Catalog, sessions *session_cache.Cache, debounce time.Duration) *Controller {
	return &Controller{
		catalog:  cat,
		sessions: sessions,
		renderer: view.NewRenderer(),
		debounce: debounce,
	}
}

// sessionFromRequest resolves the caller's session from the cookie. A
// missing or expired session aborts the request with 401; the client is
// expected to create a session first.
func (ctl *Controller) sessionFromRequest(c *gin.Context) (*view.Session, bool) {
	raw, err := c.Cookie(SessionCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "No view session; create one first"))
		return nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid view session"))
		return nil, false
	}

	session, ok := ctl.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "View session expired; create a new one"))
		return nil, false
	}

	session.Touch()
	return session, true
}

// renderHTML writes a fragment, mapping render failures to a grid error.
func (ctl *Controller) renderHTML(c *gin.Context, fragment string, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render view"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}
