package repository

import "context"

// DashboardRepository consultas read-only para el resumen del dashboard.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountDesigns(ctx context.Context) (int64, error)
	CountCatalogItems(ctx context.Context) (int64, error)
	CountPendingQuotes(ctx context.Context) (int64, error)
}
