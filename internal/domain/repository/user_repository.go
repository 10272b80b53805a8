package repository

import (
	"context"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID devuelve nil, nil si el id no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail devuelve nil, nil si el email no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
