package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"roadmap-backend/internal/shared/auth"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth())
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":  UserIDFromContext(c),
			"isGuest": IsGuest(c),
			"email":   UserEmailFromContext(c),
		})
	}
	router.GET("/api/v1/roadmap", handler)
	router.GET("/api/v1/regions", handler)
	router.GET("/api/v1/health", handler)
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth())
	router.OPTIONS("/api/v1/assessments/current", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/assessments/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthGuestHeader(t *testing.T) {
	router := identityRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap", nil)
	req.Header.Set("X-Guest-Id", " g-42 ")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"email":"","isGuest":true,"userId":"guest:g-42"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuthBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := auth.SignJWT(auth.Claims{
		Email:            "olena@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "google:123"},
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	router := identityRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Guest-Id", "ignored")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"email":"olena@example.com","isGuest":false,"userId":"google:123"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	router := identityRouter()
	for _, header := range []string{"Bearer nope", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, resp.Code)
		}
	}
}

func TestAuthRequiresIdentity(t *testing.T) {
	router := identityRouter()
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/roadmap", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthPublicPathsSkipIdentity(t *testing.T) {
	router := identityRouter()
	for _, path := range []string{"/api/v1/regions", "/api/v1/health"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}
