package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSOptionsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig([]string{"http://localhost:5173"})))
	router.OPTIONS("/api/v1/assessments", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/assessments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	assertCORSHeaders(t, resp)
}

func TestCORSHeadersOnPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig([]string{"http://localhost:5173"})))
	router.POST("/api/v1/assessments", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	assertCORSHeaders(t, resp)
}

func assertCORSHeaders(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected Allow-Origin http://localhost:5173, got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("expected Allow-Methods header")
	}
	if got := resp.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Fatalf("expected Allow-Headers header")
	}
	if got := resp.Header().Get("Access-Control-Max-Age"); got != "600" {
		t.Fatalf("expected Max-Age 600, got %q", got)
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(DefaultCORSConfig([]string{"http://localhost:5173"})))
	router.GET("/api/v1/roadmap", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Allow-Origin, got %q", got)
	}
}

func TestCORSUsesConfiguredHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(CORSConfig{
		AllowedOrigins: []string{" https://roadmap.example "},
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"X-Guest-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
	}))
	router.GET("/api/v1/roadmap/pdf", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap/pdf", nil)
	req.Header.Set("Origin", "https://roadmap.example")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	h := resp.Header()
	if got := h.Get("Access-Control-Allow-Origin"); got != "https://roadmap.example" {
		t.Fatalf("expected trimmed origin to match, got %q", got)
	}
	if got := h.Get("Access-Control-Allow-Methods"); got != "GET" {
		t.Fatalf("expected Allow-Methods GET, got %q", got)
	}
	if got := h.Get("Access-Control-Allow-Headers"); got != "X-Guest-Id" {
		t.Fatalf("expected Allow-Headers X-Guest-Id, got %q", got)
	}
	if got := h.Get("Access-Control-Expose-Headers"); got != "Content-Disposition" {
		t.Fatalf("expected Expose-Headers Content-Disposition, got %q", got)
	}
	if got := h.Get("Access-Control-Max-Age"); got != "" {
		t.Fatalf("expected no Max-Age without config, got %q", got)
	}
}
