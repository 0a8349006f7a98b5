package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"novelas-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protegido", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareSemHeader(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token não enviado")
}

func TestAuthMiddlewareSemPrefixoBearer(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	token := signToken(t, config.JWT_SECRET, jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido ou expirado")
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	token := signToken(t, config.JWT_SECRET, jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthMiddlewareTokenExpirado(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	token := signToken(t, config.JWT_SECRET, jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareAssinaturaInvalida(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	// Signed with a different secret: the gate must refuse it.
	token := signToken(t, "outro-segredo", jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareTokenAdulterado(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	token := signToken(t, config.JWT_SECRET, jwt.MapClaims{
		"id":  42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tampered := token[:len(token)-3] + "abc"

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareSemClaimID(t *testing.T) {
	config.JWT_SECRET = "segredo-de-teste"
	r := newProtectedRouter()

	token := signToken(t, config.JWT_SECRET, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
