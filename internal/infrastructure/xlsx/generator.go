// Package xlsx genera las hojas de cálculo de exporte (facturas y créditos) con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/creditos"
	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

var (
	_ cuentasporpagar.FacturasXLSXGenerator = (*Generator)(nil)
	_ creditos.XLSXGenerator                = (*Generator)(nil)
)

const (
	numFmtBs   = `#,##0.00;[Red]-#,##0.00`
	numFmtTasa = `#,##0.0000`
	fechaCelda = "2006-01-02"
)

// Generator implementa los generadores XLSX de cuentas por pagar y créditos.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

var facturaHeaders = []string{
	"Fecha", "Número", "N° Control", "Proveedor", "RIF", "Sub total", "Exento", "Base imponible",
	"Alícuota %", "IVA", "Total", "Tasa", "Monto USD", "Retención IVA", "Notas de crédito",
	"Nota de débito", "Neto nota de débito", "Monto final", "Estado",
}

// GenerateFacturasXLSX una fila por factura; los montos negativos se pintan en rojo.
func (g *Generator) GenerateFacturasXLSX(_ context.Context, rows []cuentasporpagar.FacturaExportRow) ([]byte, error) {
	s, err := newSheet("Facturas", facturaHeaders)
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	for i, r := range rows {
		f := r.Factura
		ndNumero, ndNeto := "", decimal.Zero
		if r.NotaDebito != nil {
			ndNumero, ndNeto = r.NotaDebito.Numero, r.NotaDebito.MontoNetoPagarNotaDebito
		}
		vals := []any{
			f.Fecha.Format(fechaCelda), f.Numero, f.NumeroControl, f.ProveedorNombre, f.ProveedorRIF,
			f.SubTotal, f.MontoExento, f.BaseImponible, f.AlicuotaIVA, f.IVA, f.Total,
			f.TasaCambio, f.MontoUSD, f.RetencionIVA, r.TotalNotaCredito,
			ndNumero, ndNeto, r.MontoFinal, f.Estado,
		}
		if err := s.writeRow(i+2, vals); err != nil {
			return nil, err
		}
	}
	if err := s.styleColumns(len(rows), map[string]int{"L": s.tasaStyle}, "F", "G", "H", "J", "K", "M", "N", "O", "Q", "R"); err != nil {
		return nil, err
	}
	return s.bytes()
}

var creditoHeaders = []string{
	"Fecha", "Vencimiento", "Documento", "Cliente", "RIF", "Monto", "Tasa", "Monto USD", "Saldo", "Estado", "Vencido",
}

// GenerateCreditosXLSX una fila por crédito; now decide la columna "Vencido".
func (g *Generator) GenerateCreditosXLSX(_ context.Context, list []*entity.Credito, now time.Time) ([]byte, error) {
	s, err := newSheet("Creditos", creditoHeaders)
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	for i, c := range list {
		vencido := "No"
		if c.Vencido(now) {
			vencido = "Sí"
		}
		vals := []any{
			c.Fecha.Format(fechaCelda), c.FechaVencimiento.Format(fechaCelda), c.NumeroDocumento,
			c.ClienteNombre, c.ClienteRIF, c.Monto, c.TasaCambio, c.MontoUSD, c.Saldo, c.Estado, vencido,
		}
		if err := s.writeRow(i+2, vals); err != nil {
			return nil, err
		}
	}
	if err := s.styleColumns(len(list), map[string]int{"G": s.tasaStyle}, "F", "H", "I"); err != nil {
		return nil, err
	}
	return s.bytes()
}

// ── helpers ───────────────────────────────────────────────────────────────────

type sheet struct {
	f          *excelize.File
	name       string
	montoStyle int
	tasaStyle  int
}

func newSheet(name string, headers []string) (*sheet, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(name)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	s := &sheet{f: f, name: name}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	fmtBs, fmtTasa := numFmtBs, numFmtTasa
	if s.montoStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &fmtBs}); err != nil {
		return nil, fmt.Errorf("xlsx: estilo monto: %w", err)
	}
	if s.tasaStyle, err = f.NewStyle(&excelize.Style{CustomNumFmt: &fmtTasa}); err != nil {
		return nil, fmt.Errorf("xlsx: estilo tasa: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	return s, nil
}

// writeRow escribe vals desde la columna A; los decimal.Decimal se guardan como número.
func (s *sheet) writeRow(rowNum int, vals []any) error {
	for i, v := range vals {
		if d, ok := v.(decimal.Decimal); ok {
			v = d.InexactFloat64()
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
		if err := s.f.SetCellValue(s.name, cell, v); err != nil {
			return fmt.Errorf("xlsx: celda %s: %w", cell, err)
		}
	}
	return nil
}

// styleColumns aplica el formato de montos a las columnas dadas y los estilos especiales de extra.
func (s *sheet) styleColumns(n int, extra map[string]int, montoCols ...string) error {
	if n == 0 {
		return nil
	}
	last := n + 1
	apply := func(colName string, style int) error {
		return s.f.SetCellStyle(s.name, fmt.Sprintf("%s2", colName), fmt.Sprintf("%s%d", colName, last), style)
	}
	for _, c := range montoCols {
		if err := apply(c, s.montoStyle); err != nil {
			return fmt.Errorf("xlsx: estilo columna %s: %w", c, err)
		}
	}
	for c, style := range extra {
		if err := apply(c, style); err != nil {
			return fmt.Errorf("xlsx: estilo columna %s: %w", c, err)
		}
	}
	return nil
}

func (s *sheet) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
