package usecase

import (
	"context"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// DashboardUseCase arma el resumen de conteos del panel de administración.
// Cuatro consultas read-only independientes, lanzadas en paralelo.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve {users, quotes(pending), designs, catalog}.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	type countResult struct {
		n   int64
		err error
	}

	usersCh := make(chan countResult, 1)
	quotesCh := make(chan countResult, 1)
	designsCh := make(chan countResult, 1)
	catalogCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountPendingQuotes(ctx)
		quotesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountDesigns(ctx)
		designsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountCatalogItems(ctx)
		catalogCh <- countResult{n, err}
	}()

	users := <-usersCh
	quotes := <-quotesCh
	designs := <-designsCh
	catalog := <-catalogCh

	for _, r := range []countResult{users, quotes, designs, catalog} {
		if r.err != nil {
			return nil, r.err
		}
	}

	return &dto.DashboardSummaryResponse{
		Users:   users.n,
		Quotes:  quotes.n,
		Designs: designs.n,
		Catalog: catalog.n,
	}, nil
}
