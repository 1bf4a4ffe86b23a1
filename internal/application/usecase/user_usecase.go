package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/creators-api/internal/application/dto"
	"github.com/tu-usuario/creators-api/internal/domain"
	"github.com/tu-usuario/creators-api/internal/domain/entity"
	"github.com/tu-usuario/creators-api/internal/domain/repository"
)

// UserUseCase lectura de usuarios para colaboradores autenticados
// (perfil propio, consultas de admin). No toca credenciales.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene la proyección pública de un usuario por ID.
// Devuelve domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
