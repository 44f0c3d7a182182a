package analytics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDashboardRoutesNextToTripRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")

	// stand-ins for the trip routes registered on the same group
	api.GET("/trips/:id", func(c *gin.Context) { c.String(http.StatusOK, "trip "+c.Param("id")) })
	api.GET("/trips/:id/seats", func(c *gin.Context) { c.String(http.StatusOK, "seats") })

	repo := &fakeRepository{patrons: 4}
	SetupAnalyticsRoutes(api, NewController(NewService(repo)))

	for _, path := range []string{"/api/v1/dashboard/stats", "/api/v1/trips/dashboard/stats"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"totalPatrons":4`) {
			t.Errorf("%s: body = %s", path, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/trips/abc", nil))
	if w.Body.String() != "trip abc" {
		t.Errorf("trip detail route shadowed: %s", w.Body.String())
	}
}
