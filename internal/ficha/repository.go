// internal/ficha/repository.go
package ficha

import "gorm.io/gorm"

type Repository interface {
	Criar(f *Ficha) error
	BuscarPorID(id uint) (*Ficha, error)
	BuscarPorSessao(sessaoID string) (*Ficha, error)
	ListarTodos() ([]Ficha, error)
	ListarPorCliente(clienteID uint) ([]Ficha, error)
	Deletar(f *Ficha) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Criar grava a ficha com todas as linhas filhas em uma transação.
func (r *repositoryImpl) Criar(f *Ficha) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(f).Error
	})
}

func (r *repositoryImpl) BuscarPorID(id uint) (*Ficha, error) {
	var f Ficha
	err := r.db.
		Preload("ParcelasSala").
		Preload("Contratos").
		Preload("Informacoes").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) BuscarPorSessao(sessaoID string) (*Ficha, error) {
	var f Ficha
	err := r.db.
		Preload("ParcelasSala").
		Preload("Contratos").
		Preload("Informacoes").
		Where("sessao_id = ?", sessaoID).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) ListarTodos() ([]Ficha, error) {
	var lista []Ficha
	err := r.db.
		Preload("ParcelasSala").
		Preload("Contratos").
		Preload("Informacoes").
		Order("created_at DESC").
		Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) ListarPorCliente(clienteID uint) ([]Ficha, error) {
	var lista []Ficha
	err := r.db.
		Preload("ParcelasSala").
		Preload("Contratos").
		Preload("Informacoes").
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Deletar(f *Ficha) error {
	return r.db.Select("ParcelasSala", "Contratos", "Informacoes").Delete(f).Error
}
