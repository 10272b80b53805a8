package ports

import (
	"context"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// QuotePDFGenerator genera la representación imprimible de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote) ([]byte, error)
}
