package usecase

import (
	"context"

	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// UserUseCase administración de usuarios: listado, roles y perfil.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List lista los usuarios ordenados por nombre.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:     u.ID,
			Email:  u.Email,
			Name:   u.Name,
			Role:   u.Role,
			Status: u.Status,
		})
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario (solo ADMIN por ruta).
func (uc *UserUseCase) UpdateRole(ctx context.Context, userID, role string) error {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleOperator:
	default:
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.UpdateRole(userID, role)
}

// UpdateProfile cambia el nombre del usuario autenticado.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID, name string) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.UpdateName(userID, name)
}
