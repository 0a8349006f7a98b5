package novelas

import (
	"novelas-app/internal/domain/novelas"

	"gorm.io/gorm"
)

// Every content query goes through one of these, so no handler can touch a
// row outside the authenticated user's scope.

func userNovelasQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&novelas.Novela{}).
		Where("usuario_id = ?", userID)
}

func userCapitulosQuery(db *gorm.DB, userID uint, novelaID string) *gorm.DB {
	return db.Model(&novelas.Capitulo{}).
		Where("novela_id = ? AND usuario_id = ?", novelaID, userID)
}
