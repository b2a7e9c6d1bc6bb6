package view_controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	session_cache "github.com/TechNest-Affiliates/technest-storefront-backend/cache"
	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
	"github.com/TechNest-Affiliates/technest-storefront-backend/controllers/storefront/view_controller"
	"github.com/TechNest-Affiliates/technest-storefront-backend/routes/storefront_routes"
)

type staticSource struct {
	data []byte
}

func (s staticSource) Fetch(context.Context) ([]byte, error) {
	return s.data, nil
}

const testDoc = `{
  "products": [
    {"id": "p1", "title": "SmartPhone X", "shortDescription": "Flagship phone", "category": "Phones",
     "price": "$699", "rating": 4.7, "featured": true,
     "review": {"summary": "The essentials, nailed.", "pros": ["Battery"], "cons": ["Price"], "verdict": "Buy it."}},
    {"id": "p2", "title": "AeroBook Pro", "shortDescription": "Creator laptop", "category": "Laptops",
     "price": "$1,299", "rating": 4.5, "featured": false,
     "review": {"summary": "solid", "pros": [], "cons": [], "verdict": "good"}}
  ]
}`

type viewClient struct {
	router *gin.Engine
	cookie *http.Cookie
}

func newViewClient(t *testing.T) *viewClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore(staticSource{data: []byte(testDoc)})
	sessions := session_cache.New(time.Minute)

	router := gin.New()
	api := router.Group("/api/v1")
	storefront_routes.SetupViewRoutes(api, store, sessions, 0)

	// Establish a session and keep its cookie.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/store/view/session", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == view_controller.SessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "session creation must set the session cookie")

	return &viewClient{router: router, cookie: cookie}
}

func (vc *viewClient) do(method, path string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(vc.cookie)
	rec := httptest.NewRecorder()
	vc.router.ServeHTTP(rec, req)
	return rec
}

func TestViewRequiresSession(t *testing.T) {
	vc := newViewClient(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/view/products", nil)
	rec := httptest.NewRecorder()
	vc.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetViewRendersGrid(t *testing.T) {
	vc := newViewClient(t)

	rec := vc.do(http.MethodGet, "/api/v1/store/view/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `data-product-id="p1"`)
	assert.Contains(t, rec.Body.String(), `data-product-id="p2"`)
}

func TestSetCategoryFilterNarrowsGrid(t *testing.T) {
	vc := newViewClient(t)

	rec := vc.do(http.MethodPut, "/api/v1/store/view/filters/category", `{"category": "Laptops"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AeroBook Pro")
	assert.NotContains(t, rec.Body.String(), "SmartPhone X")
}

func TestSetSearchTextRendersResults(t *testing.T) {
	vc := newViewClient(t)

	// Debounce interval is zero in tests, so the query is synchronous.
	rec := vc.do(http.MethodPut, "/api/v1/store/view/filters/search", `{"q": "smartphone"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SmartPhone X")
	assert.NotContains(t, rec.Body.String(), "AeroBook Pro")
}

func TestSetMinRatingShowsEmptyState(t *testing.T) {
	vc := newViewClient(t)

	rec := vc.do(http.MethodPut, "/api/v1/store/view/filters/rating", `{"minRating": 4.9}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "grid-empty")
}

func TestModalLifecycle(t *testing.T) {
	vc := newViewClient(t)

	rec := vc.do(http.MethodPost, "/api/v1/store/view/modal/p1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The essentials, nailed.")
	assert.Contains(t, rec.Body.String(), "modal-overlay")

	rec = vc.do(http.MethodDelete, "/api/v1/store/view/modal", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Closing again is a no-op, not an error.
	rec = vc.do(http.MethodDelete, "/api/v1/store/view/modal", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenModalUnknownProduct(t *testing.T) {
	vc := newViewClient(t)

	rec := vc.do(http.MethodPost, "/api/v1/store/view/modal/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRetryRendersGrid(t *testing.T) {
	vc := newViewClient(t)

	rec := vc.do(http.MethodPost, "/api/v1/store/view/retry", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "product-grid")
}
