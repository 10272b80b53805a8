package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLineRequest línea de cotización. Name y UnitPrice son snapshots al
// momento de crear; Total se calcula en el servidor si viene en cero.
type QuoteLineRequest struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// CreateQuoteRequest entrada para crear una cotización.
// Subtotal/GrandTotal nil se derivan de las líneas.
type CreateQuoteRequest struct {
	UserID        string             `json:"userId"`
	RoomType      string             `json:"roomType"`
	Items         []QuoteLineRequest `json:"items"`
	Subtotal      *decimal.Decimal   `json:"subtotal"`
	Discount      *decimal.Decimal   `json:"discount"`
	GrandTotal    *decimal.Decimal   `json:"grandTotal"`
	ScreenshotURL string             `json:"screenshotUrl"`
	Notes         string             `json:"notes"`
}

// QuoteLineResponse línea en respuestas, con el producto resuelto si existe.
type QuoteLineResponse struct {
	ProductID string           `json:"productId"`
	Product   *ItemRefResponse `json:"product,omitempty"`
	Name      string           `json:"name"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
	Total     decimal.Decimal  `json:"total"`
}

// QuoteResponse salida de una cotización.
type QuoteResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	User          *UserRefResponse    `json:"user,omitempty"`
	RoomType      string              `json:"roomType"`
	Items         []QuoteLineResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	GrandTotal    decimal.Decimal     `json:"grandTotal"`
	Status        string              `json:"status"`
	ScreenshotURL *string             `json:"screenshotUrl"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
