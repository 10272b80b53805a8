package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

var _ repository.LoginHistoryRepository = (*LoginHistoryRepo)(nil)

// LoginHistoryRepo auditoría append-only de intentos de login.
type LoginHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewLoginHistoryRepository construye el adaptador.
func NewLoginHistoryRepository(pool *pgxpool.Pool) *LoginHistoryRepo {
	return &LoginHistoryRepo{pool: pool}
}

// Append registra un intento de autenticación. Nunca se actualiza ni borra.
func (r *LoginHistoryRepo) Append(ctx context.Context, record *entity.LoginHistory) error {
	query := `
		INSERT INTO login_history (id, name, email, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		record.ID, record.Name, record.Email, record.Status, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert login history: %w", err)
	}
	return nil
}
