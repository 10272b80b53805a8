package repository

import (
	"context"
	"time"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// ItemFilter filtros de listado del catálogo.
type ItemFilter struct {
	Category string
	Search   string // búsqueda por nombre, insensible a mayúsculas y acentos
	Limit    int
	Offset   int
}

// ItemRepository define el puerto de persistencia para Item (catálogo).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// GetByID devuelve nil, nil si el id no existe.
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	// ListUpdatedSince pull incremental por updated_at (sync de clientes).
	// since nil devuelve todo.
	ListUpdatedSince(ctx context.Context, since *time.Time) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// Delete elimina por id. ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
