package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	engine := gin.New()
	engine.Use(c.Middleware())
	engine.GET("/v1/notes/:id", func(ctx *gin.Context) { ctx.Status(http.StatusNotFound) })
	engine.GET("/metrics", gin.WrapH(Handler(reg)))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/notes/abc", nil))
	}

	if got := testutil.ToFloat64(c.requests.WithLabelValues("/v1/notes/:id", http.MethodGet, "404")); got != 2 {
		t.Fatalf("should have counted 2 requests for the route, got %v", got)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics endpoint should answer 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "notes_http_requests_total") {
		t.Fatalf("metrics endpoint should expose notes_http_requests_total")
	}
}
