// Package pdf implementa el comprobante de checkout en PDF.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  Restaurante          │  Recibo N° + Fecha   │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Curso | Plato | Precio               │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL                                       │
//	│  Mensaje de agradecimiento                   │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/foodhub/internal/application/checkout"
	"github.com/jhoicas/foodhub/internal/domain/entity"
	pricing "github.com/jhoicas/foodhub/internal/domain/menu"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 204, Green: 153, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa checkout.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	header checkout.ReceiptHeader,
	receipt entity.Receipt,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receipt "+receipt.Number, true).
		WithAuthor(nonEmpty(header.RestaurantName, "FoodHub"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(header, receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(header.CurrencySymbol, receipt.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(header.CurrencySymbol, receipt))
	m.AddRows(footerRow(header.CurrencySymbol, receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del restaurante (izq) y N° de recibo + fecha (der).
func headerRow(header checkout.ReceiptHeader, receipt entity.Receipt) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(header.RestaurantName, "FoodHub"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Receipt #"+receipt.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(receipt.ConfirmedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Course", 3, align.Left),
		h("Item", 6, align.Left),
		h("Price", 3, align.Right),
	)
}

// tableLineRows: una fila por plato del pedido.
func tableLineRows(symbol string, lines []entity.OrderLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(l.Course.Label(), props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(6).Add(text.New(l.Item.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(pricing.FormatPrice(symbol, l.Item.Price), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func totalRow(symbol string, receipt entity.Receipt) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(pricing.FormatPrice(symbol, receipt.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRow: la fuente base no trae emoji, así que el mensaje se rehace en texto plano.
func footerRow(symbol string, receipt entity.Receipt) core.Row {
	msg := fmt.Sprintf("Payment of %s confirmed! Thank you.", pricing.FormatPrice(symbol, receipt.Total))
	return row.New(12).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Top: 4, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
