package usuarios

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"novelas-app/config"
	"novelas-app/database"
	authapi "novelas-app/internal/api/auth"
	"novelas-app/internal/app/http/middleware"
	"novelas-app/internal/domain/usuarios"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) {
	t.Helper()
	config.JWT_SECRET = "segredo-de-teste"

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func TestGetCurrentUser(t *testing.T) {
	setupTestDB(t)

	user := usuarios.Usuario{
		Name:         "Clara",
		Email:        "clara@example.com",
		PasswordHash: "$2a$12$hash-que-nao-deve-vazar",
	}
	require.NoError(t, database.DB.Create(&user).Error)

	r := gin.New()
	r.GET("/api/me", middleware.AuthMiddleware(), GetCurrentUser)

	token, err := authapi.GenerateToken(user.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "clara@example.com")
	assert.Contains(t, w.Body.String(), `"name":"Clara"`)
	assert.NotContains(t, w.Body.String(), "hash-que-nao-deve-vazar")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetCurrentUserRemovido(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.GET("/api/me", middleware.AuthMiddleware(), GetCurrentUser)

	// Token for an id with no row behind it.
	token, err := authapi.GenerateToken(9999, time.Now().Add(time.Hour))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
