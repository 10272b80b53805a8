package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/ports"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones. Las líneas guardan snapshots de
// nombre y precio al momento de crear; los totales se derivan en el servidor
// cuando el cliente no los manda.
type QuoteUseCase struct {
	repo repository.QuoteRepository
	pdf  ports.QuotePDFGenerator
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(repo repository.QuoteRepository, pdf ports.QuotePDFGenerator) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, pdf: pdf}
}

// Create registra una cotización en estado pending.
func (uc *QuoteUseCase) Create(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	now := time.Now()
	lines := make([]entity.QuoteLine, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, l := range in.Items {
		total := l.Total
		if total.IsZero() {
			total = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		}
		subtotal = subtotal.Add(total)
		lines = append(lines, entity.QuoteLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     total,
		})
	}
	if in.Subtotal != nil {
		subtotal = *in.Subtotal
	}
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}
	grandTotal := subtotal.Sub(discount)
	if in.GrandTotal != nil {
		grandTotal = *in.GrandTotal
	}
	quote := &entity.Quote{
		ID:            uuid.New().String(),
		UserID:        in.UserID,
		RoomType:      in.RoomType,
		Items:         lines,
		Subtotal:      subtotal,
		Discount:      discount,
		GrandTotal:    grandTotal,
		Status:        entity.QuoteStatusPending,
		ScreenshotURL: in.ScreenshotURL,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// List lista cotizaciones con filtros, más reciente primero.
func (uc *QuoteUseCase) List(ctx context.Context, filter repository.QuoteFilter) ([]dto.QuoteResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, *toQuoteResponse(q))
	}
	return out, nil
}

// GetByID obtiene una cotización. Devuelve nil, nil si no existe.
func (uc *QuoteUseCase) GetByID(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return toQuoteResponse(q), nil
}

// GeneratePDF produce la representación imprimible de la cotización.
// Devuelve nil, nil si el id no existe.
func (uc *QuoteUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return uc.pdf.GenerateQuotePDF(ctx, q)
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	lines := make([]dto.QuoteLineResponse, 0, len(q.Items))
	for _, l := range q.Items {
		line := dto.QuoteLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		}
		if l.Product != nil {
			line.Product = &dto.ItemRefResponse{
				ID:       l.Product.ID,
				Name:     l.Product.Name,
				Price:    l.Product.Price,
				Category: l.Product.Category,
			}
		}
		lines = append(lines, line)
	}
	resp := &dto.QuoteResponse{
		ID:         q.ID,
		UserID:     q.UserID,
		RoomType:   q.RoomType,
		Items:      lines,
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		GrandTotal: q.GrandTotal,
		Status:     q.Status,
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	if q.Owner != nil {
		resp.User = &dto.UserRefResponse{ID: q.Owner.ID, Name: q.Owner.Name, Email: q.Owner.Email}
	}
	if q.ScreenshotURL != "" {
		u := q.ScreenshotURL
		resp.ScreenshotURL = &u
	}
	return resp
}
