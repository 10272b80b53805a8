package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo de muebles (colección "products" en
// el backend original). Es la fuente de precios para la valoración de diseños
// y para los snapshots de cotizaciones.
type Item struct {
	ID             string
	Name           string
	Description    string          // "desc" en el cliente Android
	Price          decimal.Decimal // precio unitario de venta
	PreviewImage   string
	AssetBundleURL string // bundle 3D para el visualizador
	Category       string
	Liked          bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
