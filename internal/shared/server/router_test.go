package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/shared/config"
)

type stubHandler struct{}

func (stubHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", func(c *gin.Context) { c.Status(http.StatusCreated) })
	rg.GET("/assessments/current", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func newTestRouter(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		Config:     config.Config{Env: "dev", SubmitPerMinute: perMinute, CORSAllowOrigin: []string{"http://ui.example"}},
		SubmitPath: "/api/v1/assessments",
		Handlers:   []RouteRegistrar{stubHandler{}},
	})
}

func guestRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-Guest-Id", "g-1")
	return req
}

func TestSubmitIsRateLimited(t *testing.T) {
	r := newTestRouter(2)
	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, guestRequest(http.MethodPost, "/api/v1/assessments"))
		if resp.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i, resp.Code)
		}
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, guestRequest(http.MethodPost, "/api/v1/assessments"))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	// reads are not in the submit group
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, guestRequest(http.MethodGet, "/api/v1/assessments/current"))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for read, got %d", resp.Code)
	}
}

func TestMetricsIsPublic(t *testing.T) {
	r := newTestRouter(10)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "go_goroutines") {
		t.Fatalf("expected go collector output")
	}
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	r := newTestRouter(10)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, guestRequest(http.MethodGet, "/api/v1/nope"))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"code":"not_found"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"} {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
