// Package pdf implementa la representación imprimible de una cotización de
// diseño de interiores.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: DreamSpace  │  N° Cotización + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email + Ambiente                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Total                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  NOTAS + estado de la cotización                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pentagonlimangbaliw-eng/DreamSpace-backend/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 115}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuoteGenerator implementa ports.QuotePDFGenerator usando Maroto v2.
type MarotoQuoteGenerator struct{}

// NewMarotoQuoteGenerator construye el generador.
func NewMarotoQuoteGenerator() *MarotoQuoteGenerator { return &MarotoQuoteGenerator{} }

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoQuoteGenerator) GenerateQuotePDF(_ context.Context, quote *entity.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización DreamSpace", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(quote.Items) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(quote))

	// Notas y estado
	m.AddRows(line.NewRow(3))
	for _, r := range footerRows(quote) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y N° de cotización + fecha (der).
func headerRow(quote *entity.Quote) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("DreamSpace", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Diseño de interiores a tu medida", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(quote.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente y del ambiente cotizado.
func clientRow(quote *entity.Quote) core.Row {
	name, email := "—", "—"
	if quote.Owner != nil {
		name = nonEmpty(quote.Owner.Name, "—")
		email = nonEmpty(quote.Owner.Email, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Ambiente: %s",
				email,
				nonEmpty(quote.RoomType, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de la cotización.
func tableLineRows(lines []entity.QuoteLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nonEmpty(l.Name, l.ProductID),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(quote *entity.Quote) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuento:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+quote.Subtotal.StringFixed(2)),
			value("-$"+quote.Discount.StringFixed(2)),
			grandValue("$"+quote.GrandTotal.StringFixed(2)),
		),
		col.New(3),
	)
}

// footerRows: notas libres + estado actual de la cotización.
func footerRows(quote *entity.Quote) []core.Row {
	rows := []core.Row{
		row.New(1).Add(col.New(12)),
	}

	if quote.Notes != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Notas:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		)))
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(quote.Notes, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Estado: "+statusText(quote.Status), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	)))

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Esta cotización es informativa y está sujeta a disponibilidad de "+
				"stock. Los precios incluyen los impuestos vigentes a la fecha de emisión.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID devuelve un identificador corto legible a partir del UUID.
// Ej: "a1b2c3d4-..." → "COT-A1B2C3D4"
func shortID(id string) string {
	head := id
	if i := strings.IndexByte(id, '-'); i > 0 {
		head = id[:i]
	}
	return "COT-" + strings.ToUpper(head)
}

func statusText(status string) string {
	switch status {
	case entity.QuoteStatusApproved:
		return "APROBADA"
	case entity.QuoteStatusRejected:
		return "RECHAZADA"
	default:
		return "PENDIENTE"
	}
}
