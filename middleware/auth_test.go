package middleware

import (
	"memareh/config"
	"memareh/pkg/context"
	"memareh/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwt = &config.Jwt{Secret: "test-secret", ExpiresIn: 3600, RefreshWindow: 60}

func init() {
	gin.SetMode(gin.TestMode)
}

func token(t *testing.T, userID uint64, role string, expire time.Duration) string {
	t.Helper()
	tok, err := jwt.GenerateToken([]byte(testJwt.Secret), userID, role, jwt.TypeAccess, expire)
	require.NoError(t, err)
	return "Bearer " + tok
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": context.CurrentUserID(c),
			"role":    context.GetRole(c),
		})
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := newRouter(Auth(testJwt))

	w := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, token(t, 42, jwt.RoleCustomer, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"role":"customer"}`, w.Body.String())
	assert.Empty(t, w.Header().Get(HeaderNewAccessToken))
}

func TestAuth_RotatesNearExpiry(t *testing.T) {
	r := newRouter(Auth(testJwt))

	w := do(r, token(t, 42, jwt.RoleCustomer, 30*time.Second))

	assert.Equal(t, http.StatusOK, w.Code)
	fresh := w.Header().Get(HeaderNewAccessToken)
	require.NotEmpty(t, fresh)
	claims, err := jwt.ParseToken([]byte(testJwt.Secret), jwt.TypeAccess, fresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter(OptionalAuth(testJwt))

	w := do(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"role":""}`, w.Body.String())

	w = do(r, "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"role":""}`, w.Body.String())

	w = do(r, token(t, 9, jwt.RoleTechnician, time.Hour))
	assert.JSONEq(t, `{"user_id":9,"role":"technician"}`, w.Body.String())
}

func TestRequireModerator(t *testing.T) {
	r := newRouter(Auth(testJwt), RequireModerator())

	w := do(r, token(t, 9, jwt.RoleCustomer, time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, token(t, 1, jwt.RoleAdmin, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGinZap_RequestID(t *testing.T) {
	r := newRouter(GinZap())

	w := do(r, "")
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
