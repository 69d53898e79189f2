// Package pdf genera la hoja viajera imprimible de una orden de trabajo:
// encabezado de la orden y tabla de requerimientos de materiales según la
// receta congelada en la orden de fabricación.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
)

var (
	colorPrimary = &props.Color{Red: 33, Green: 53, Blue: 85}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ manufacturing.TravelerPDFGenerator = (*MarotoTravelerGenerator)(nil)

// MarotoTravelerGenerator implementa manufacturing.TravelerPDFGenerator usando Maroto v2.
type MarotoTravelerGenerator struct{}

// NewMarotoTravelerGenerator construye el generador.
func NewMarotoTravelerGenerator() *MarotoTravelerGenerator { return &MarotoTravelerGenerator{} }

// GenerateTravelerPDF genera el PDF y devuelve sus bytes.
func (g *MarotoTravelerGenerator) GenerateTravelerPDF(
	_ context.Context,
	data manufacturing.TravelerData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja Viajera "+data.Order.OrderNo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(orderRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(materialsHeaderRow())
	for _, req := range data.Requirements {
		m.AddRows(materialRow(req))
	}
	if len(data.Requirements) == 0 {
		m.AddRows(row.New(6).Add(
			text.NewCol(12, "Producto suelto: sin consumo de materiales",
				props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar hoja viajera: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data manufacturing.TravelerData) core.Row {
	return row.New(12).Add(
		text.NewCol(8, "HOJA VIAJERA — "+data.WorkOrder.Title,
			props.Text{Size: 13, Style: fontstyle.Bold, Color: colorPrimary}),
		text.NewCol(4, data.Order.OrderNo,
			props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)
}

func orderRows(data manufacturing.TravelerData) []core.Row {
	deadline := "—"
	if data.Order.Deadline != nil {
		deadline = data.Order.Deadline.Format("2006-01-02")
	}
	return []core.Row{
		row.New(6).Add(
			text.NewCol(6, "Producto: "+data.ProductName, props.Text{Size: 9}),
			text.NewCol(3, "Cantidad: "+data.Order.Quantity.String(), props.Text{Size: 9}),
			text.NewCol(3, "Fecha límite: "+deadline, props.Text{Size: 9, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(6, "Estado: "+data.WorkOrder.Status, props.Text{Size: 9}),
			text.NewCol(6, "Prioridad: "+data.WorkOrder.Priority, props.Text{Size: 9}),
		),
	}
}

func materialsHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(8).Add(
		text.NewCol(5, "Componente", header),
		text.NewCol(3, "SKU", header),
		text.NewCol(2, "Por unidad", mergeAlign(header, align.Right)),
		text.NewCol(2, "Requerido", mergeAlign(header, align.Right)),
	)
}

func materialRow(req manufacturing.TravelerRequirement) core.Row {
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		text.NewCol(5, req.ComponentName, cell),
		text.NewCol(3, req.ComponentSKU, cell),
		text.NewCol(2, req.PerUnit.String(), mergeAlign(cell, align.Right)),
		text.NewCol(2, req.Required.String(), mergeAlign(cell, align.Right)),
	)
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
