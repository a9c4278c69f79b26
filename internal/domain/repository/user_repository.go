package repository

import "github.com/jhoicas/essence-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Ausencia se reporta como (nil, nil), no como error.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
