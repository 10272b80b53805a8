// Package design contiene reglas de dominio puras sobre diseños guardados.
package design

import (
	"github.com/shopspring/decimal"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// TotalPrice suma el precio unitario de cada artículo colocado ya resuelto.
// Una referencia sin resolver (Item nil) aporta cero: no es un error.
// Nunca se persiste; se recalcula en cada lectura para no quedar obsoleto
// cuando cambian los precios del catálogo.
func TotalPrice(d *entity.Design) decimal.Decimal {
	total := decimal.Zero
	if d == nil {
		return total
	}
	for _, placed := range d.Items {
		if placed.Item != nil {
			total = total.Add(placed.Item.Price)
		}
	}
	return total
}
