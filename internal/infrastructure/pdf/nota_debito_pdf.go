// Package pdf genera la representación impresa de la Nota de Débito por
// diferencial cambiario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RIF  │  N° Nota de Débito + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + RIF + Dirección                         │
//	│  FACTURA AFECTADA: N° / Control / Fecha / Tasa original      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Notas de crédito aplicadas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CÁLCULO: USD neto / Tasas / Diferencial / Base / IVA        │
//	│           Retención / MONTO NETO A PAGAR                     │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/pkg/formato"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

const fechaImpresa = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ cuentasporpagar.NotaDebitoPDFGenerator = (*NotaDebitoPDFGenerator)(nil)

// NotaDebitoPDFGenerator implementa cuentasporpagar.NotaDebitoPDFGenerator usando Maroto v2.
type NotaDebitoPDFGenerator struct{}

// NewNotaDebitoPDFGenerator construye el generador.
func NewNotaDebitoPDFGenerator() *NotaDebitoPDFGenerator { return &NotaDebitoPDFGenerator{} }

// GenerateNotaDebitoPDF genera el PDF y devuelve sus bytes.
func (g *NotaDebitoPDFGenerator) GenerateNotaDebitoPDF(
	_ context.Context,
	nd *entity.NotaDebito,
	factura *entity.Factura,
	notas []*entity.NotaCredito,
	company *entity.Company,
) ([]byte, error) {
	if nd == nil || factura == nil || company == nil {
		return nil, fmt.Errorf("pdf: nota de débito, factura y empresa son requeridas")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de Débito "+nd.Numero, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(nd, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(proveedorRow(factura))
	m.AddRows(facturaRow(factura))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(notas) > 0 {
		m.AddRows(notasHeaderRow())
		m.AddRows(notasRows(notas)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(calculoRows(nd)...)

	if nd.EsSaldoAFavor() {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Diferencial negativo: saldo a favor de la empresa.", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorRed, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + RIF (izq) y N° nota de débito + fecha (der).
func headerRow(nd *entity.NotaDebito, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RIF: "+company.RIF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE DÉBITO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nd.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+nd.Fecha.Format(fechaImpresa), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func proveedorRow(f *entity.Factura) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(f.ProveedorNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RIF: %s   |   Dirección: %s",
				f.ProveedorRIF, nonEmpty(f.ProveedorDireccion, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func facturaRow(f *entity.Factura) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FACTURA AFECTADA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %s   |   Control: %s   |   Fecha: %s   |   Total: %s   |   Tasa: %s",
				f.Numero,
				nonEmpty(f.NumeroControl, "-"),
				f.Fecha.Format(fechaImpresa),
				formato.Bs(f.Total),
				formato.Numero(f.TasaCambio, 4),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// notasHeaderRow: cabecera de la tabla de notas de crédito.
func notasHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Nota de crédito", 3, align.Left),
		h("Fecha", 2, align.Center),
		h("Total", 3, align.Right),
		h("Tasa", 2, align.Right),
		h("USD", 2, align.Right),
	)
}

func notasRows(notas []*entity.NotaCredito) []core.Row {
	rows := make([]core.Row, 0, len(notas))
	for _, nc := range notas {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		rows = append(rows, row.New(7).Add(
			cell(nc.Numero, 3, align.Left),
			cell(nc.Fecha.Format(fechaImpresa), 2, align.Center),
			cell(formato.Bs(nc.Total), 3, align.Right),
			cell(formato.Numero(nc.TasaCambio, 4), 2, align.Right),
			cell(formato.USD(nc.MontoUSD), 2, align.Right),
		))
	}
	return rows
}

// calculoRows: bloque del cálculo alineado a la derecha.
func calculoRows(nd *entity.NotaDebito) []core.Row {
	item := func(label, value string, grand bool) core.Row {
		p := props.Text{Size: 9, Align: align.Right, Right: 1}
		l := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}
		if grand {
			p.Style, p.Size, p.Color = fontstyle.Bold, 10, colorPrimary
			l.Size, l.Color = 10, colorPrimary
		}
		return row.New(6).Add(
			col.New(4),
			col.New(4).Add(text.New(label, l)),
			col.New(4).Add(text.New(value, p)),
		)
	}
	return []core.Row{
		item("Monto USD neto:", formato.USD(nd.MontoUSDNeto), false),
		item("Tasa original:", formato.Numero(nd.TasaCambioOriginal, 4), false),
		item("Tasa de pago:", formato.Numero(nd.TasaCambioPago, 4), false),
		item("Diferencial con IVA:", signedBs(nd.DiferencialCambiarioConIVA), false),
		item("Base imponible:", signedBs(nd.BaseImponibleDiferencial), false),
		item("IVA:", signedBs(nd.IVADiferencial), false),
		item("Retención IVA:", signedBs(nd.RetencionIVADiferencial), false),
		item("MONTO NETO A PAGAR:", signedBs(nd.MontoNetoPagarNotaDebito), true),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// signedBs "-Bs. 1.234,56" para montos negativos.
func signedBs(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + formato.Bs(d.Abs())
	}
	return formato.Bs(d)
}
