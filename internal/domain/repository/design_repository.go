package repository

import (
	"context"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// DesignRepository define el puerto de persistencia para Design (DIP).
// Las lecturas resuelven (populate) el dueño a name/email y cada artículo
// colocado a su entrada de catálogo, para que la valoración y la respuesta no
// necesiten otra vuelta al datastore.
type DesignRepository interface {
	Create(ctx context.Context, design *entity.Design) error
	// GetByID devuelve nil, nil si el id no existe.
	GetByID(ctx context.Context, id string) (*entity.Design, error)
	// List devuelve todos los diseños; con recent=true solo los 10 más
	// recientes por fecha de creación descendente.
	List(ctx context.Context, recent bool) ([]*entity.Design, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Design, error)
	// Replace reemplaza los campos completos del diseño. ErrNotFound si no existe.
	Replace(ctx context.Context, design *entity.Design) error
	// SetScreenshotURL segunda escritura del flujo de ingestión (no atómica
	// respecto a Create: un crash entre ambas deja el diseño sin screenshot).
	SetScreenshotURL(ctx context.Context, id, url string) error
	// Delete elimina sin verificar propiedad. ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	// DeleteAll vacía la colección (reset de kiosko).
	DeleteAll(ctx context.Context) error
}
