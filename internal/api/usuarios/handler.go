package usuarios

import (
	"net/http"

	"novelas-app/database"
	"novelas-app/internal/domain/usuarios"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser handles GET /api/me. The Usuario model keeps the password
// hash out of the JSON, so the row is returned as-is.
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return
	}

	var user usuarios.Usuario
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	c.JSON(http.StatusOK, user)
}
