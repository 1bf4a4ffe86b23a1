package repository

import (
	"context"

	"github.com/tu-usuario/creators-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// El use case de auth solo necesita estas tres operaciones; no hay
// update ni delete en el flujo de registro/login.
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrEmailAlreadyExists
	// si el email ya existe (el constraint único del store es el árbitro
	// final bajo registros concurrentes).
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail busca por email normalizado. (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID busca por ID. (nil, nil) si no existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
