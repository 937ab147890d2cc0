package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "github.com/aynul321/Vokzo-mvp/internal/pkg/jwt"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)

	r := gin.New()
	protected := r.Group("/", JWTAuth(j))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	protected.GET("/admin-only", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.GET("/provider-only", ProviderOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, j
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := doRequest(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := doRequest(r, "/whoami", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "/whoami", "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := doRequest(r, "/whoami", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	other := jwtsvc.New("another_secret_key_32_chars_long!", time.Hour)
	token, err := other.GenerateToken(1, "customer")
	require.NoError(t, err)

	w := doRequest(r, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SetsIdentity(t *testing.T) {
	r, j := newAuthTestRouter(t)

	token, err := j.GenerateToken(42, "customer")
	require.NoError(t, err)

	w := doRequest(r, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestRoleMiddleware(t *testing.T) {
	r, j := newAuthTestRouter(t)

	adminToken, err := j.GenerateToken(1, "admin")
	require.NoError(t, err)
	providerToken, err := j.GenerateToken(2, "provider")
	require.NoError(t, err)
	customerToken, err := j.GenerateToken(3, "customer")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "/admin-only", "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/admin-only", "Bearer "+customerToken).Code)

	assert.Equal(t, http.StatusOK, doRequest(r, "/provider-only", "Bearer "+providerToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/provider-only", "Bearer "+adminToken).Code)
}
