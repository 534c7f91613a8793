package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("stockpulse_analyses_total 1\n"))
	})
	cfg := config.ServerConfig{RateLimitPerMinute: 100, CORSAllowOrigins: []string{"*"}}
	r := NewRouter(NewHandler(&mockAnalysisService{summary: sampleSummary()}), cfg, metrics)

	cases := []struct {
		path string
		want int
	}{
		{path: "/api/v1/analyze/IBM", want: http.StatusOK},
		{path: "/metrics", want: http.StatusOK},
		{path: "/api/v1/unknown", want: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Origin", "https://dashboard.example")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Fatalf("expected X-Request-ID header to be set")
			}
			if w.Header().Get("Access-Control-Allow-Origin") != "*" {
				t.Fatalf("expected CORS header")
			}
		})
	}
}

func TestNewRouter_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.ServerConfig{RateLimitPerMinute: 1}
	r := NewRouter(NewHandler(&mockAnalysisService{summary: sampleSummary()}), cfg, nil)

	var last int
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analyze/IBM", nil))
		last = w.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", last)
	}
}
