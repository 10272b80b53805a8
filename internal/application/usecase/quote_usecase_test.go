package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/dto"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/application/usecase"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/repository"
)

type memQuoteRepo struct {
	quotes map[string]*entity.Quote
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{quotes: map[string]*entity.Quote{}}
}

func (m *memQuoteRepo) Create(_ context.Context, q *entity.Quote) error {
	cp := *q
	m.quotes[q.ID] = &cp
	return nil
}

func (m *memQuoteRepo) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	return m.quotes[id], nil
}

func (m *memQuoteRepo) List(_ context.Context, _ repository.QuoteFilter) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0, len(m.quotes))
	for _, q := range m.quotes {
		out = append(out, q)
	}
	return out, nil
}

func (m *memQuoteRepo) DeleteAll(_ context.Context) error {
	m.quotes = map[string]*entity.Quote{}
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestQuoteCreate_DerivaTotalesDeLasLineas(t *testing.T) {
	uc := usecase.NewQuoteUseCase(newMemQuoteRepo(), nil)

	out, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		UserID:   "user-1",
		RoomType: "Kitchen",
		Items: []dto.QuoteLineRequest{
			{ProductID: "p-1", Name: "Mesa", Quantity: 2, UnitPrice: dec("100")},
			{ProductID: "p-2", Name: "Silla", Quantity: 4, UnitPrice: dec("25.50")},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Total.Equal(dec("200")),
		"total de línea ausente = unitPrice * quantity")
	assert.True(t, out.Items[1].Total.Equal(dec("102")))
	assert.True(t, out.Subtotal.Equal(dec("302")), "subtotal = suma de líneas")
	assert.True(t, out.Discount.IsZero())
	assert.True(t, out.GrandTotal.Equal(dec("302")))
	assert.Equal(t, entity.QuoteStatusPending, out.Status,
		"toda cotización nace pending")
}

func TestQuoteCreate_RespetaTotalesEnviados(t *testing.T) {
	uc := usecase.NewQuoteUseCase(newMemQuoteRepo(), nil)

	subtotal, discount, grand := dec("500"), dec("50"), dec("450")
	out, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		UserID: "user-1",
		Items: []dto.QuoteLineRequest{
			{ProductID: "p-1", Name: "Sofá", Quantity: 1, UnitPrice: dec("500"), Total: dec("500")},
		},
		Subtotal:   &subtotal,
		Discount:   &discount,
		GrandTotal: &grand,
	})
	require.NoError(t, err)

	assert.True(t, out.Subtotal.Equal(subtotal), "los totales explícitos del cliente se conservan")
	assert.True(t, out.Discount.Equal(discount))
	assert.True(t, out.GrandTotal.Equal(grand))
}

func TestQuoteCreate_DescuentoSinGrandTotalLoDeriva(t *testing.T) {
	uc := usecase.NewQuoteUseCase(newMemQuoteRepo(), nil)

	discount := dec("20")
	out, err := uc.Create(context.Background(), dto.CreateQuoteRequest{
		Items: []dto.QuoteLineRequest{
			{ProductID: "p-1", Quantity: 1, UnitPrice: dec("100")},
		},
		Discount: &discount,
	})
	require.NoError(t, err)

	assert.True(t, out.GrandTotal.Equal(dec("80")), "grandTotal = subtotal - descuento")
}
