package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestGenerateFacturasXLSX(t *testing.T) {
	fecha := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []cuentasporpagar.FacturaExportRow{
		{
			Factura: &entity.Factura{
				Numero: "A-0001", ProveedorNombre: "Distribuidora Centro", ProveedorRIF: "J-12345678-9",
				Fecha: fecha, Total: decimal.NewFromInt(11600), TasaCambio: decimal.NewFromInt(36),
				Estado: entity.FacturaPagada,
			},
			TotalNotaCredito: decimal.NewFromInt(116),
			NotaDebito:       &entity.NotaDebito{Numero: "ND-00000001", MontoNetoPagarNotaDebito: decimal.NewFromInt(-340)},
			MontoFinal:       decimal.NewFromInt(11144),
		},
	}

	out, err := NewGenerator().GenerateFacturasXLSX(context.Background(), rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Facturas"}, f.GetSheetList())
	v, err := f.GetCellValue("Facturas", "B2")
	require.NoError(t, err)
	assert.Equal(t, "A-0001", v)
	v, _ = f.GetCellValue("Facturas", "P2")
	assert.Equal(t, "ND-00000001", v)
	v, _ = f.GetCellValue("Facturas", "A1")
	assert.Equal(t, "Fecha", v)
}

func TestGenerateCreditosXLSX(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	list := []*entity.Credito{
		{
			ClienteNombre: "Juan Pérez", NumeroDocumento: "C-1", Estado: entity.CreditoPendiente,
			Fecha: now.AddDate(0, -2, 0), FechaVencimiento: now.AddDate(0, -1, 0),
			Monto: decimal.NewFromInt(500), Saldo: decimal.NewFromInt(200),
		},
		{
			ClienteNombre: "Ana Gómez", NumeroDocumento: "C-2", Estado: entity.CreditoPendiente,
			Fecha: now, FechaVencimiento: now.AddDate(0, 1, 0),
			Monto: decimal.NewFromInt(100), Saldo: decimal.NewFromInt(100),
		},
	}

	out, err := NewGenerator().GenerateCreditosXLSX(context.Background(), list, now)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	v, _ := f.GetCellValue("Creditos", "K2")
	assert.Equal(t, "Sí", v)
	v, _ = f.GetCellValue("Creditos", "K3")
	assert.Equal(t, "No", v)
}

func TestGenerateFacturasXLSX_Empty(t *testing.T) {
	out, err := NewGenerator().GenerateFacturasXLSX(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
