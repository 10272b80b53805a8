package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only de conteos para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountUsers total de cuentas.
func (r *DashboardRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountDesigns total de diseños guardados.
func (r *DashboardRepo) CountDesigns(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM designs`)
}

// CountCatalogItems total de artículos del catálogo.
func (r *DashboardRepo) CountCatalogItems(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM items`)
}

// CountPendingQuotes cotizaciones en estado pending.
func (r *DashboardRepo) CountPendingQuotes(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM quotes WHERE status = 'pending'`)
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
