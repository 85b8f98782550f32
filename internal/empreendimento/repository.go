// internal/empreendimento/repository.go
package empreendimento

import (
	"errors"

	"github.com/gavresorts/api-ficha/internal/calculadora"
	"gorm.io/gorm"
)

// Repository encapsula o acesso ao catálogo de empreendimentos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarTodos retorna os empreendimentos ativos com torres e categorias.
func (r *Repository) ListarTodos() ([]Empreendimento, error) {
	var lista []Empreendimento
	err := r.DB.Preload("Torres").Preload("Categorias").Find(&lista).Error
	return lista, err
}

// BuscarPorID retorna um empreendimento com suas associações.
func (r *Repository) BuscarPorID(id uint) (*Empreendimento, error) {
	var emp Empreendimento
	if err := r.DB.Preload("Torres").Preload("Categorias").First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// Criar insere um novo empreendimento.
func (r *Repository) Criar(emp *Empreendimento) error {
	return r.DB.Create(emp).Error
}

// CriarCategoria insere uma nova tabela de preço.
func (r *Repository) CriarCategoria(cat *CategoriaPreco) error {
	return r.DB.Create(cat).Error
}

// ListarCategorias retorna as categorias de um empreendimento. Quando há mais
// de um registro por categoria vale o mais recente.
func (r *Repository) ListarCategorias(empreendimentoID uint) ([]CategoriaPreco, error) {
	var lista []CategoriaPreco
	err := r.DB.
		Where("empreendimento_id = ?", empreendimentoID).
		Order("created_at DESC").
		Find(&lista).Error
	if err != nil {
		return nil, err
	}

	vistas := make(map[string]bool, len(lista))
	unicas := lista[:0]
	for _, cat := range lista {
		if vistas[cat.CategoriaPreco] {
			continue
		}
		vistas[cat.CategoriaPreco] = true
		unicas = append(unicas, cat)
	}
	return unicas, nil
}

// BuscarDadosCategoria resolve o contexto de preço de um contrato. A ausência
// de registro significa "sem preenchimento automático", não é erro: retorna
// (nil, nil).
func (r *Repository) BuscarDadosCategoria(empreendimentoID uint, categoria string) (*calculadora.DadosCategoria, error) {
	var cat CategoriaPreco
	err := r.DB.
		Where("empreendimento_id = ? AND categoria_preco = ?", empreendimentoID, categoria).
		Order("created_at DESC").
		First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dados := &calculadora.DadosCategoria{
		ValorTotal:       cat.VirCota,
		ValorSinal:       cat.TotalSinal,
		ValorSaldo:       cat.TotalSaldo,
		MaxParcelasSinal: cat.SinalQtd,
		MaxParcelasSaldo: cat.SaldoQtd,
	}
	if dados.MaxParcelasSinal < 1 {
		dados.MaxParcelasSinal = 1
	}
	if dados.MaxParcelasSaldo < 1 {
		dados.MaxParcelasSaldo = 1
	}
	return dados, nil
}
