// internal/vendedor/model.go
package vendedor

import (
	"time"

	"gorm.io/gorm"
)

// Vendedor é um usuário da equipe de vendas (liner, closer ou líder de sala).
type Vendedor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome  string `gorm:"size:255;not null" json:"nome"`
	Email string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Cargo string `gorm:"size:50" json:"cargo"` // "liner", "closer", "lider-sala"
	Senha string `gorm:"size:255;not null" json:"-"`
	Admin bool   `gorm:"not null;default:false" json:"admin"`
}

// Migrate cria a tabela de vendedores.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vendedor{})
}
