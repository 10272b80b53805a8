package design_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/design"
	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

func placedWithPrice(price string) entity.PlacedItem {
	return entity.PlacedItem{
		ItemID: "item-" + price,
		Item:   &entity.Item{ID: "item-" + price, Price: decimal.RequireFromString(price)},
	}
}

func TestTotalPrice_SumaPreciosResueltos(t *testing.T) {
	d := &entity.Design{
		Items: []entity.PlacedItem{
			placedWithPrice("10"),
			placedWithPrice("20"),
			placedWithPrice("0"),
		},
	}
	assert.True(t, design.TotalPrice(d).Equal(decimal.NewFromInt(30)),
		"el total debe ser la suma de los precios unitarios resueltos")
}

func TestTotalPrice_ReferenciaSinResolverValeCero(t *testing.T) {
	d := &entity.Design{
		Items: []entity.PlacedItem{
			placedWithPrice("150.50"),
			{ItemID: "borrado-del-catalogo"}, // Item nil
		},
	}
	assert.True(t, design.TotalPrice(d).Equal(decimal.RequireFromString("150.50")),
		"un artículo sin resolver no debe aportar al total ni fallar")
}

func TestTotalPrice_DisenoVacio(t *testing.T) {
	assert.True(t, design.TotalPrice(&entity.Design{}).IsZero())
	assert.True(t, design.TotalPrice(nil).IsZero())
}

func TestTotalPrice_MismoResultadoEnCualquierOrden(t *testing.T) {
	a := &entity.Design{Items: []entity.PlacedItem{
		placedWithPrice("99.99"), placedWithPrice("0.01"), placedWithPrice("45"),
	}}
	b := &entity.Design{Items: []entity.PlacedItem{
		placedWithPrice("45"), placedWithPrice("99.99"), placedWithPrice("0.01"),
	}}
	assert.True(t, design.TotalPrice(a).Equal(design.TotalPrice(b)))
}

func TestTotalPrice_ArticuloRepetidoSumaDosVeces(t *testing.T) {
	d := &entity.Design{Items: []entity.PlacedItem{
		placedWithPrice("25"), placedWithPrice("25"),
	}}
	assert.True(t, design.TotalPrice(d).Equal(decimal.NewFromInt(50)),
		"cada colocación cuenta por separado aunque repita artículo")
}
