package repository

import (
	"context"
	"time"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// QuoteFilter filtros de listado de cotizaciones.
type QuoteFilter struct {
	Status string
	UserID string
	From   *time.Time
	To     *time.Time
}

// QuoteRepository define el puerto de persistencia para Quote.
// Las lecturas resuelven (populate) el dueño y la referencia de producto de
// cada línea; los snapshots de nombre/precio de línea no se tocan.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	// GetByID devuelve nil, nil si el id no existe.
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	// List ordena por fecha de creación descendente.
	List(ctx context.Context, filter QuoteFilter) ([]*entity.Quote, error)
	// DeleteAll vacía la colección (reset de kiosko).
	DeleteAll(ctx context.Context) error
}
