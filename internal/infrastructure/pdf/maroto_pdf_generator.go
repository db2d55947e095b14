// Package pdf genera el formato impreso del resguardo para firma.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                 │  Folio + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DIRECTOR / ÁREA / PUESTO / RESGUARDANTE                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | No. Inventario | Descripción | Estado | Origen   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Director  │  Resguardante                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Resguardos-api/internal/application/usecase"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

var _ usecase.ResguardoPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ResguardoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	institution string
}

// NewMarotoPDFGenerator construye el generador. institution aparece en el encabezado.
func NewMarotoPDFGenerator(institution string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{institution: institution}
}

// GenerateResguardoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateResguardoPDF(_ context.Context, res *entity.Resguardo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resguardo "+res.Folio, true).
		WithAuthor(g.institution, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(res.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de bienes: %d", len(res.Items)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Right: 1,
		}),
	)))

	m.AddRows(line.NewRow(20))
	m.AddRows(signatureRows(res)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: institución (izq), folio con código de barras y fecha (der).
func (g *MarotoPDFGenerator) headerRow(res *entity.Resguardo) core.Row {
	return row.New(24).Add(
		col.New(7).Add(
			text.New(nonEmpty(g.institution, "Control de Inventarios"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RESGUARDO DE BIENES MUEBLES", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(res.Folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+res.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			code.NewBar(res.Folio, props.Barcode{Percent: 60, Top: 11, Left: 40}),
		),
	)
}

// partiesRow: director, área, puesto y resguardante.
func partiesRow(res *entity.Resguardo) core.Row {
	field := func(label, value string, top float64) []core.Component {
		return []core.Component{
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: top}),
			text.New(nonEmpty(value, "-"), props.Text{Size: 9, Top: top + 4}),
		}
	}
	left := append(field("DIRECTOR", res.Director, 1), field("PUESTO", res.Puesto, 10)...)
	right := append(field("ÁREA", res.Area, 1), field("RESGUARDANTE", res.Custodian, 10)...)
	return row.New(20).Add(
		col.New(6).Add(left...),
		col.New(6).Add(right...),
	)
}

// tableHeaderRow: cabecera de la tabla de bienes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("No. Inventario", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Estado", 2, align.Center),
		h("Origen", 2, align.Center),
	)
}

// tableItemRows: una fila por mueble en el orden de selección.
func tableItemRows(items []entity.ResguardoItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.InventoryCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(it.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(it.Condition, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(it.Origin, "-"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// signatureRows: líneas de firma de quien entrega y quien recibe.
func signatureRows(res *entity.Resguardo) []core.Row {
	sign := func(title, name string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 5}),
			text.New(title, props.Text{Size: 8, Align: align.Center, Top: 10, Color: colorGray}),
		)
	}
	return []core.Row{
		row.New(18).Add(
			sign("ENTREGA", res.Director),
			sign("RECIBE", res.Custodian),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"El resguardante se compromete a conservar los bienes descritos y a reportar cualquier cambio de estado o ubicación.",
				props.Text{Size: 6.5, Color: colorGray, Top: 3},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
