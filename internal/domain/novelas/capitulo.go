package novelas

import (
	"time"

	"novelas-app/internal/domain/usuarios"
)

// Capitulo carries the owner id redundantly next to the novela id so
// ownership checks filter a single table instead of joining novelas.
type Capitulo struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Titulo    string            `gorm:"size:200;not null" json:"titulo"`
	Conteudo  string            `gorm:"type:text;not null" json:"conteudo"`
	NovelaID  uint              `gorm:"not null;index:idx_capitulos_novela_id" json:"novela_id"`
	UsuarioID uint              `gorm:"not null;index:idx_capitulos_usuario_id" json:"usuario_id"`
	Usuario   *usuarios.Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Capitulo) TableName() string {
	return "capitulos"
}
