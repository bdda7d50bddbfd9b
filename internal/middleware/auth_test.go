package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"team-portal/internal/config"
	"team-portal/pkg/utils"
)

func newAuthRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenID uuid.UUID
	router := gin.New()
	router.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		id, ok := ActorID(c)
		require.True(t, ok)
		seenID = id
		c.Status(http.StatusOK)
	})
	router.GET("/admin", AuthMiddleware(cfg), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, &seenID
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}
}

func mintToken(t *testing.T, userID uuid.UUID, role, secret string, expiryHours int) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(userID, "member@example.com", "Member", role, secret, expiryHours)
	require.NoError(t, err)
	return token
}

func TestAuthMissingCredential(t *testing.T) {
	cfg := testConfig()
	router, _ := newAuthRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthCookieAccepted(t *testing.T) {
	cfg := testConfig()
	router, seenID := newAuthRouter(t, cfg)

	userID := uuid.New()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: mintToken(t, userID, "user", "test-secret", 1),
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *seenID)
}

func TestAuthBearerFallback(t *testing.T) {
	cfg := testConfig()
	router, seenID := newAuthRouter(t, cfg)

	userID := uuid.New()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, userID, "user", "test-secret", 1))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *seenID)
}

func TestAuthExpiredToken(t *testing.T) {
	cfg := testConfig()
	router, _ := newAuthRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: mintToken(t, uuid.New(), "user", "test-secret", -1),
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthTamperedToken(t *testing.T) {
	cfg := testConfig()
	router, _ := newAuthRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: mintToken(t, uuid.New(), "user", "other-secret", 1),
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly(t *testing.T) {
	cfg := testConfig()
	router, _ := newAuthRouter(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: mintToken(t, uuid.New(), "user", "test-secret", 1),
	})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{
		Name:  SessionCookieName,
		Value: mintToken(t, uuid.New(), "admin", "test-secret", 1),
	})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
