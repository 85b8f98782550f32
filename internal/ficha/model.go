// internal/ficha/model.go
package ficha

import (
	"time"

	"gorm.io/gorm"
)

// Ficha é a ficha de negociação de cota: quem vendeu, o que foi pago em sala,
// as unidades vendidas e o plano de pagamento.
type Ficha struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	// SessaoID identifica a sessão de negociação; chave da deduplicação de envio.
	SessaoID  string `gorm:"size:36;not null;uniqueIndex" json:"sessaoId"`
	ClienteID uint   `gorm:"not null;index" json:"clienteId"`

	Liner     string `gorm:"size:255" json:"liner"`
	Closer    string `gorm:"size:255" json:"closer"`
	TipoVenda string `gorm:"size:50" json:"tipoVenda"`

	ParcelasSala []ParcelaSala         `gorm:"foreignKey:FichaID;constraint:OnDelete:CASCADE" json:"parcelasSala"`
	Contratos    []Contrato            `gorm:"foreignKey:FichaID;constraint:OnDelete:CASCADE" json:"contratos"`
	Informacoes  []InformacaoPagamento `gorm:"foreignKey:FichaID;constraint:OnDelete:CASCADE" json:"informacoesPagamento"`
}

// ParcelaSala é um pagamento recebido em sala.
type ParcelaSala struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	FichaID          uint     `gorm:"not null;index" json:"fichaId"`
	Tipo             string   `gorm:"size:100;not null;default:'Entrada'" json:"tipo"`
	ValorTotal       float64  `gorm:"not null;default:0" json:"valorTotal"`
	ValorDistribuido float64  `gorm:"not null;default:0" json:"valorDistribuido"`
	QuantidadeCotas  int      `gorm:"not null;default:0" json:"quantidadeCotas"`
	FormasPagamento  []string `gorm:"type:jsonb;serializer:json" json:"formasPagamento"`
}

// Contrato é uma unidade vendida dentro da ficha. O nome do empreendimento é
// desnormalizado no momento da seleção.
type Contrato struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	FichaID            uint    `gorm:"not null;index" json:"fichaId"`
	TipoContrato       string  `gorm:"size:50" json:"tipoContrato"`
	EmpreendimentoID   uint    `gorm:"index" json:"empreendimentoId"`
	NomeEmpreendimento string  `gorm:"size:255" json:"nomeEmpreendimento"`
	Torre              string  `gorm:"size:100" json:"torre"`
	Apartamento        string  `gorm:"size:50" json:"apartamento"`
	Cota               string  `gorm:"size:50" json:"cota"`
	CategoriaPreco     string  `gorm:"size:100" json:"categoriaPreco"`
	Valor              float64 `gorm:"not null;default:0" json:"valor"`
}

// InformacaoPagamento é uma linha persistida do plano de pagamento. O campo
// Tipo guarda o rótulo derivado ("1ª Entrada", "Sinal"...), nunca texto livre.
type InformacaoPagamento struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	FichaID            uint       `gorm:"not null;index" json:"fichaId"`
	Tipo               string     `gorm:"size:50;not null" json:"tipo"`
	Total              float64    `gorm:"not null;default:0" json:"total"`
	QtdParcelas        int        `gorm:"not null;default:0" json:"qtdParcelas"`
	ValorParcela       float64    `gorm:"not null;default:0" json:"valorParcela"`
	FormaPagamento     string     `gorm:"size:50" json:"formaPagamento"`
	PrimeiroVencimento *time.Time `json:"primeiroVencimento,omitempty"`
}

// Migrate cria as tabelas da ficha.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Ficha{}, &ParcelaSala{}, &Contrato{}, &InformacaoPagamento{})
}
