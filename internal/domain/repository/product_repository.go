package repository

import "github.com/jhoicas/essence-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Ausencia se reporta como (nil, nil), no como error.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
