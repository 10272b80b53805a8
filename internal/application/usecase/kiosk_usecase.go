package usecase

import (
	"context"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// Pinger contrato mínimo para verificar la conexión al datastore.
// Lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KioskUseCase operaciones de administración del modo kiosko (demos en sala
// de ventas): reset de datos de demostración y estado de la conexión.
type KioskUseCase struct {
	designs repository.DesignRepository
	quotes  repository.QuoteRepository
	db      Pinger
}

// NewKioskUseCase construye el caso de uso.
func NewKioskUseCase(designs repository.DesignRepository, quotes repository.QuoteRepository, db Pinger) *KioskUseCase {
	return &KioskUseCase{designs: designs, quotes: quotes, db: db}
}

// ResetHard borra todos los diseños y cotizaciones de demostración.
func (uc *KioskUseCase) ResetHard(ctx context.Context) error {
	if err := uc.designs.DeleteAll(ctx); err != nil {
		return err
	}
	return uc.quotes.DeleteAll(ctx)
}

// DBConnected indica si el datastore responde al ping.
func (uc *KioskUseCase) DBConnected(ctx context.Context) bool {
	return uc.db.Ping(ctx) == nil
}
