package usuarios

import (
	"time"
)

// Usuario is a registered account. PasswordHash is write-only: it never
// appears in API responses.
type Usuario struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:150;not null;uniqueIndex:idx_usuarios_email" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
