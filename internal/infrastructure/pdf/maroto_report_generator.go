// Package pdf implementa la generación del reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Fecha de generación + Usuario             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | SKU | Proveedor | Cant | Costo | Fechas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: unidades activas en el almacén                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	appreport "github.com/jhoicas/almacen/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF del reporte de lotes activos y devuelve
// sus bytes. Las filas llegan ya ordenadas por producto y antigüedad.
func (g *MarotoReportGenerator) GenerateStockReport(
	lines []appreport.Line,
	meta appreport.Meta,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(meta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + usuario (der).
func headerRow(meta appreport.Meta) core.Row {
	fecha := meta.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lotes activos por producto (orden FIFO)", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fecha, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generado por: "+meta.GeneratedBy, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de lotes.
func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1.5,
		}))
	}

	return row.New(7).Add(
		header(3, "Producto", align.Left),
		header(2, "SKU", align.Left),
		header(2, "Proveedor", align.Left),
		header(1, "Cant.", align.Right),
		header(2, "Costo Unit.", align.Right),
		header(1, "Ingreso", align.Center),
		header(1, "Caduca", align.Center),
	)
}

// tableDetailRows: una fila por lote activo, con subtotal al cierre de cada
// producto. Las filas llegan agrupadas por producto.
func tableDetailRows(lines []appreport.Line) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	var groupSKU string
	var groupName string
	var groupUnits int64

	closeGroup := func() {
		if groupSKU == "" {
			return
		}
		rows = append(rows, subtotalRow(groupName, groupUnits))
		groupUnits = 0
	}

	for _, l := range lines {
		if l.SKU != groupSKU {
			closeGroup()
			groupSKU = l.SKU
			groupName = l.ProductName
		}
		groupUnits += l.Quantity

		caduca := "-"
		if l.ExpirationDate != nil {
			caduca = l.ExpirationDate.Format("02/01/06")
		}
		rows = append(rows, row.New(7).Add(
			col.New(3).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1.5})),
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1.5})),
			col.New(2).Add(text.New(l.SupplierName, props.Text{Size: 8, Top: 1.5})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1.5,
			})),
			col.New(2).Add(text.New("$ "+l.UnitCost.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1.5,
			})),
			col.New(1).Add(text.New(l.EntryDate.Format("02/01/06"), props.Text{
				Size: 8, Align: align.Center, Top: 1.5,
			})),
			col.New(1).Add(text.New(caduca, props.Text{
				Size: 8, Align: align.Center, Top: 1.5,
			})),
		))
	}
	closeGroup()
	return rows
}

// subtotalRow: unidades activas de un producto al cerrar su grupo de lotes.
func subtotalRow(productName string, units int64) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New("Subtotal "+productName, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		})),
		col.New(4),
		col.New(1).Add(text.New(fmt.Sprintf("%d", units), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1,
		})),
		col.New(4),
	)
}

// totalRow: total de unidades activas.
func totalRow(meta appreport.Meta) core.Row {
	return row.New(9).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL UNIDADES", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", meta.TotalUnits), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 1.5,
		})),
	)
}
