package novelas

import (
	"errors"
	"net/http"

	"novelas-app/database"
	"novelas-app/internal/domain/novelas"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET /api/novelas
// ------------------------------
func GetNovelas(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	list := make([]novelas.Novela, 0)
	err := userNovelasQuery(database.DB, userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar novelas"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// POST /api/novelas
// ------------------------------
func CreateNovela(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req NovelaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título é obrigatório"})
		return
	}

	novela := novelas.Novela{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		UsuarioID: userID,
	}
	if err := database.DB.Create(&novela).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar novela"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Novela criada com sucesso!"})
}

// ------------------------------
// PUT /api/novelas/:novelaId
// ------------------------------
func UpdateNovela(c *gin.Context) {
	id := c.Param("novelaId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req NovelaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título é obrigatório"})
		return
	}

	var novela novelas.Novela
	err := database.DB.First(&novela, "id = ? AND usuario_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novela não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar novela"})
		return
	}

	err = database.DB.Model(&novela).Updates(map[string]interface{}{
		"titulo":    req.Titulo,
		"descricao": req.Descricao,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar novela"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Novela atualizada com sucesso!"})
}

// ------------------------------
// DELETE /api/novelas/:novelaId
// ------------------------------
func DeleteNovela(c *gin.Context) {
	id := c.Param("novelaId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	// Chapters go with it via the FK cascade.
	res := database.DB.Delete(&novelas.Novela{}, "id = ? AND usuario_id = ?", id, userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir novela"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Novela não encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Novela excluída com sucesso!"})
}

// ------------------------------
// GET /api/novelas/:novelaId/capitulos
// ------------------------------
// A novela id that exists but belongs to someone else yields an empty list,
// same as a novela without chapters. Ownership is enforced by the filter.
func GetCapitulos(c *gin.Context) {
	novelaID := c.Param("novelaId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	list := make([]novelas.Capitulo, 0)
	err := userCapitulosQuery(database.DB, userID, novelaID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar capítulos"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// POST /api/novelas/:novelaId/capitulos
// ------------------------------
func CreateCapitulo(c *gin.Context) {
	novelaID := c.Param("novelaId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CapituloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título e conteúdo são obrigatórios"})
		return
	}

	// The parent novela must exist and belong to the caller; the insert uses
	// the verified row's id, never the raw path parameter.
	var novela novelas.Novela
	err := database.DB.First(&novela, "id = ? AND usuario_id = ?", novelaID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novela não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar capítulo"})
		return
	}

	capitulo := novelas.Capitulo{
		Titulo:    req.Titulo,
		Conteudo:  req.Conteudo,
		NovelaID:  novela.ID,
		UsuarioID: userID,
	}
	if err := database.DB.Create(&capitulo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar capítulo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Capítulo criado com sucesso!"})
}

// ------------------------------
// PUT /api/novelas/:novelaId/capitulos/:capituloId
// ------------------------------
func UpdateCapitulo(c *gin.Context) {
	novelaID := c.Param("novelaId")
	capituloID := c.Param("capituloId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CapituloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Título e conteúdo são obrigatórios"})
		return
	}

	// Authorization is re-derived from the stored row, not the path: a valid
	// token for user A can never reach user B's chapter, whatever ids it sends.
	var capitulo novelas.Capitulo
	err := database.DB.First(&capitulo,
		"id = ? AND novela_id = ? AND usuario_id = ?",
		capituloID, novelaID, userID,
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Capítulo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar capítulo"})
		return
	}

	err = database.DB.Model(&capitulo).Updates(map[string]interface{}{
		"titulo":   req.Titulo,
		"conteudo": req.Conteudo,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar capítulo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Capítulo atualizado com sucesso!"})
}

// ------------------------------
// DELETE /api/novelas/:novelaId/capitulos/:capituloId
// ------------------------------
func DeleteCapitulo(c *gin.Context) {
	novelaID := c.Param("novelaId")
	capituloID := c.Param("capituloId")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&novelas.Capitulo{},
		"id = ? AND novela_id = ? AND usuario_id = ?",
		capituloID, novelaID, userID,
	)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir capítulo"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Capítulo não encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Capítulo excluído com sucesso!"})
}
