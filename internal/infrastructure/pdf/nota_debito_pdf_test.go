package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func TestGenerateNotaDebitoPDF(t *testing.T) {
	fecha := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	factura := &entity.Factura{
		Numero: "A-0001", ProveedorNombre: "Distribuidora Centro", ProveedorRIF: "J-12345678-9",
		Fecha: fecha, Total: decimal.NewFromInt(11600), TasaCambio: decimal.NewFromInt(36),
	}
	nd := &entity.NotaDebito{
		Numero: "ND-00000001", Fecha: fecha.AddDate(0, 0, 15),
		TasaCambioOriginal:         decimal.NewFromInt(36),
		TasaCambioPago:             decimal.NewFromInt(40),
		MontoUSDNeto:               decimal.RequireFromString("322.2222"),
		DiferencialCambiarioConIVA: decimal.RequireFromString("1288.8889"),
		MontoNetoPagarNotaDebito:   decimal.RequireFromString("1000"),
	}
	notas := []*entity.NotaCredito{{Numero: "NC-1", Fecha: fecha, Total: decimal.NewFromInt(116), TasaCambio: decimal.NewFromInt(36)}}
	company := &entity.Company{Name: "Backoffice C.A.", RIF: "J-00000000-0"}

	out, err := NewNotaDebitoPDFGenerator().GenerateNotaDebitoPDF(context.Background(), nd, factura, notas, company)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateNotaDebitoPDF_MissingInputs(t *testing.T) {
	_, err := NewNotaDebitoPDFGenerator().GenerateNotaDebitoPDF(context.Background(), nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestSignedBs(t *testing.T) {
	assert.True(t, strings.HasPrefix(signedBs(decimal.NewFromInt(-340)), "-Bs. 340"))
	assert.True(t, strings.HasPrefix(signedBs(decimal.NewFromInt(5)), "Bs. 5"))
}
