// internal/cliente/model.go
package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente é o cadastro preenchido na etapa anterior à ficha de negociação.
// Sem um cliente gravado a negociação não pode ser enviada.
type Cliente struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome           string `gorm:"size:255;not null" json:"nome"`
	CPF            string `gorm:"size:14;uniqueIndex" json:"cpf"`
	RG             string `gorm:"size:20" json:"rg"`
	OrgaoEmissor   string `gorm:"size:20" json:"orgaoEmissor"`
	EstadoEmissor  string `gorm:"size:2" json:"estadoEmissor"`
	Profissao      string `gorm:"size:100" json:"profissao"`
	DataNascimento string `gorm:"size:10" json:"dataNascimento"`
	EstadoCivil    string `gorm:"size:30" json:"estadoCivil"`
	Email          string `gorm:"size:255" json:"email"`
	Telefone       string `gorm:"size:20" json:"telefone"`

	// Endereço
	Logradouro     string `gorm:"size:255" json:"logradouro"`
	NumeroEndereco string `gorm:"size:20" json:"numeroEndereco"`
	Bairro         string `gorm:"size:100" json:"bairro"`
	Complemento    string `gorm:"size:100" json:"complemento"`
	CEP            string `gorm:"size:9" json:"cep"`
	Cidade         string `gorm:"size:100" json:"cidade"`
	UFEndereco     string `gorm:"size:2" json:"ufEndereco"`

	// Cônjuge
	NomeConjuge          string `gorm:"size:255" json:"nomeConjuge"`
	CPFConjuge           string `gorm:"size:14" json:"cpfConjuge"`
	RGConjuge            string `gorm:"size:20" json:"rgConjuge"`
	OrgaoEmissorConjuge  string `gorm:"size:20" json:"orgaoEmissorConjuge"`
	EstadoEmissorConjuge string `gorm:"size:2" json:"estadoEmissorConjuge"`
	ProfissaoConjuge     string `gorm:"size:100" json:"profissaoConjuge"`
	EmailConjuge         string `gorm:"size:255" json:"emailConjuge"`
	TelefoneConjuge      string `gorm:"size:20" json:"telefoneConjuge"`
}

// Migrate cria a tabela de clientes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
