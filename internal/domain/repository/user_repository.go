package repository

import "github.com/tu-usuario/manufacturing-pro/internal/domain/entity"

// UserRepository es el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	UpdateRole(id, role string) error
	UpdateName(id, name string) error
	List() ([]*entity.User, error)
}
