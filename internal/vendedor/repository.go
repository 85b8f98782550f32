// internal/vendedor/repository.go
package vendedor

import "gorm.io/gorm"

// Repository encapsula operações de banco para Vendedor.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Vendedor) error {
	return r.DB.Create(v).Error
}

func (r *Repository) BuscarPorEmail(email string) (*Vendedor, error) {
	var v Vendedor
	if err := r.DB.Where("email = ?", email).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) BuscarPorID(id uint) (*Vendedor, error) {
	var v Vendedor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListarTodos() ([]Vendedor, error) {
	var lista []Vendedor
	err := r.DB.Find(&lista).Error
	return lista, err
}
