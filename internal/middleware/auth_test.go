package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/config"
	"github.com/gahette/judo-library/internal/httperr"
	"github.com/gahette/judo-library/internal/models"
	"github.com/gahette/judo-library/internal/service"
)

func newProtectedRouter(tokens *service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	errs := httperr.NewWriter(config.VerbosityMinimal, zap.NewNop())
	router := gin.New()
	router.GET("/protected", Auth(tokens, errs), func(c *gin.Context) {
		claims := c.MustGet(ClaimsKey).(*models.Claims)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return router
}

func get(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth_RejectsBadHeaders(t *testing.T) {
	router := newProtectedRouter(service.NewTokenService("s", time.Hour))

	for _, header := range []string{
		"",
		"Bearer",
		"Token abc",
		"Bearer not-a-token",
	} {
		rec := get(router, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_AdmitsValidToken(t *testing.T) {
	tokens := service.NewTokenService("s", time.Hour)
	router := newProtectedRouter(tokens)

	token, err := tokens.Issue(&models.User{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	rec := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@b.com")
}
