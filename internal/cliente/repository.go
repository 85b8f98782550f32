// internal/cliente/repository.go
package cliente

import "gorm.io/gorm"

type Repository interface {
	Criar(c *Cliente) error
	BuscarPorID(id uint) (*Cliente, error)
	BuscarPorCPF(cpf string) (*Cliente, error)
	ListarTodos() ([]Cliente, error)
	Atualizar(c *Cliente) error
	Deletar(c *Cliente) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Criar(c *Cliente) error {
	return r.db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorCPF(cpf string) (*Cliente, error) {
	var c Cliente
	if err := r.db.Where("cpf = ?", cpf).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos() ([]Cliente, error) {
	var lista []Cliente
	err := r.db.Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(c *Cliente) error {
	return r.db.Save(c).Error
}

func (r *repositoryImpl) Deletar(c *Cliente) error {
	return r.db.Delete(c).Error
}
