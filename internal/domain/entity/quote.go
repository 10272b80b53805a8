package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Quote.
const (
	QuoteStatusPending  = "pending"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
)

// QuoteLine es una línea de cotización. Name y UnitPrice son snapshots tomados
// al crear la cotización: no cambian si el artículo del catálogo cambia
// después (una cotización es un compromiso a una fecha).
type QuoteLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`

	// Product resuelto por el repositorio (populate), puede ser nil.
	Product *Item `json:"-"`
}

// Quote es una cotización de precios sobre un conjunto de artículos.
type Quote struct {
	ID            string
	UserID        string
	RoomType      string
	Items         []QuoteLine
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	GrandTotal    decimal.Decimal
	Status        string // pending, approved, rejected
	ScreenshotURL string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Owner resuelto por el repositorio (populate), puede ser nil.
	Owner *User
}
