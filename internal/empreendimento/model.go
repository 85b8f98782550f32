// internal/empreendimento/model.go
package empreendimento

import (
	"time"

	"gorm.io/gorm"
)

// Empreendimento é um resort do catálogo de vendas.
type Empreendimento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Nome      string         `gorm:"size:255;not null;uniqueIndex" json:"nome"`
	Descricao string         `gorm:"size:255" json:"descricao"`
	Status    string         `gorm:"size:50;not null;default:'ATIVO'" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Torres     []Torre          `gorm:"foreignKey:EmpreendimentoID;constraint:OnDelete:CASCADE" json:"torres,omitempty"`
	Categorias []CategoriaPreco `gorm:"foreignKey:EmpreendimentoID;constraint:OnDelete:CASCADE" json:"categorias,omitempty"`
}

// Torre é um bloco/torre dentro de um empreendimento.
type Torre struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	EmpreendimentoID uint   `gorm:"not null;index" json:"empreendimentoId"`
	Nome             string `gorm:"size:255;not null" json:"nome"`
	Descricao        string `gorm:"size:255" json:"descricao"`
}

// CategoriaPreco é a tabela de preço vigente de uma categoria dentro de um
// empreendimento: valor da cota e os totais/tetos de sinal e saldo.
type CategoriaPreco struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	EmpreendimentoID  uint      `gorm:"not null;index" json:"empreendimentoId"`
	CategoriaPreco    string    `gorm:"size:100;not null;index" json:"categoriaPreco"`
	VirCota           float64   `gorm:"not null;default:0" json:"virCota"`
	TotalEntrada      float64   `gorm:"not null;default:0" json:"totalEntrada"`
	TotalSinal        float64   `gorm:"not null;default:0" json:"totalSinal"`
	TotalSaldo        float64   `gorm:"not null;default:0" json:"totalSaldo"`
	SinalQtd          int       `gorm:"not null;default:1" json:"sinalQtd"`
	SaldoQtd          int       `gorm:"not null;default:1" json:"saldoQtd"`
	PercentualEntrada float64   `gorm:"not null;default:0" json:"percentualEntrada"`
	PercentualSinal   float64   `gorm:"not null;default:0" json:"percentualSinal"`
	PercentualSaldo   float64   `gorm:"not null;default:0" json:"percentualSaldo"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Migrate cria as tabelas do catálogo.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Empreendimento{}, &Torre{}, &CategoriaPreco{})
}
