package novelas

import (
	"time"

	"novelas-app/internal/domain/usuarios"
)

type Novela struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Titulo    string            `gorm:"size:200;not null" json:"titulo"`
	Descricao string            `gorm:"type:text" json:"descricao"`
	UsuarioID uint              `gorm:"not null;index:idx_novelas_usuario_id" json:"usuario_id"`
	Usuario   *usuarios.Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE;" json:"-"`

	// Deleting a novela removes its chapters at the store level.
	Capitulos []Capitulo `gorm:"foreignKey:NovelaID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Novela) TableName() string {
	return "novelas"
}
