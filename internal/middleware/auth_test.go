package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/auth"

	"github.com/gin-gonic/gin"
)

func protectedRouter(tokens *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", RequireToken(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": UID(c)})
	})
	router.GET("/admin-only", RequireToken(tokens), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireTokenRejectsMissingHeader(t *testing.T) {
	router := protectedRouter(auth.NewTokenIssuer("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireTokenRejectsGarbage(t *testing.T) {
	router := protectedRouter(auth.NewTokenIssuer("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireTokenAcceptsValidToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	router := protectedRouter(tokens)

	token, err := tokens.Sign("u1", "users")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	router := protectedRouter(tokens)

	userToken, err := tokens.Sign("u1", "users")
	if err != nil {
		t.Fatal(err)
	}
	adminToken, err := tokens.Sign("a1", "admin")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user token, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin token, got %d", w.Code)
	}
}
