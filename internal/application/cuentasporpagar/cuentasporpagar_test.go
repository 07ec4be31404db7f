package cuentasporpagar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository/mocks"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const companyID = "company-1"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type repos struct {
	facturas *mocks.MockFacturaRepository
	notasCr  *mocks.MockNotaCreditoRepository
	notasDb  *mocks.MockNotaDebitoRepository
}

func newRepos(t *testing.T) repos {
	ctrl := gomock.NewController(t)
	return repos{
		facturas: mocks.NewMockFacturaRepository(ctrl),
		notasCr:  mocks.NewMockNotaCreditoRepository(ctrl),
		notasDb:  mocks.NewMockNotaDebitoRepository(ctrl),
	}
}

// fakeTx ejecuta fn con los mismos mocks; rolledBack indica que fn devolvió error.
type fakeTx struct {
	r          repos
	corridas   int
	rolledBack bool
}

func (tx *fakeTx) RunPago(_ context.Context, fn func(repository.FacturaRepository, repository.NotaCreditoRepository, repository.NotaDebitoRepository) error) error {
	tx.corridas++
	err := fn(tx.r.facturas, tx.r.notasCr, tx.r.notasDb)
	tx.rolledBack = err != nil
	return err
}

// facturaPendiente: 1000 USD a tasa 36, IVA 16 %, retención 75 %.
func facturaPendiente() *entity.Factura {
	return &entity.Factura{
		ID:                  "fac-1",
		CompanyID:           companyID,
		Numero:              "00001234",
		BaseImponible:       d("1000"),
		AlicuotaIVA:         d("16"),
		IVA:                 d("160"),
		SubTotal:            d("1000"),
		Total:               d("1160"),
		MontoUSD:            d("1000"),
		TasaCambio:          d("36"),
		PorcentajeRetencion: d("75"),
		Estado:              entity.FacturaPendiente,
	}
}

func round4(v decimal.Decimal) string { return v.Round(4).StringFixed(4) }

// ──────────────────────────────────────────────────────────────────────────────
// CreateFactura
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateFactura_CalculaCamposDerivados(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())

	r.facturas.EXPECT().GetByNumero(gomock.Any(), companyID, "J-12345678-4", "0001").Return(nil, nil)
	var guardada *entity.Factura
	r.facturas.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f *entity.Factura) error {
		guardada = f
		return nil
	})

	out, err := uc.CreateFactura(context.Background(), companyID, dto.CreateFacturaRequest{
		Numero:              " 0001 ",
		Fecha:               time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ProveedorNombre:     "Distribuidora Caracas",
		ProveedorRIF:        "j123456784",
		BaseImponible:       d("1000"),
		MontoExento:         d("250"),
		AlicuotaIVA:         d("16"),
		PorcentajeRetencion: d("75"),
		TasaCambio:          d("40"),
	})
	require.NoError(t, err)
	require.NotNil(t, guardada)

	assert.Equal(t, "0001", out.Numero)
	assert.Equal(t, "J-12345678-4", out.ProveedorRIF)
	assert.Equal(t, entity.FacturaPendiente, out.Estado)
	assert.True(t, d("1250").Equal(out.SubTotal))
	assert.True(t, d("160").Equal(out.IVA))
	assert.True(t, d("1410").Equal(out.Total))
	assert.True(t, d("120").Equal(out.RetencionIVA))
	assert.True(t, d("35.25").Equal(out.MontoUSD))
	assert.True(t, d("1410").Equal(out.MontoFinal), "sin notas el monto final es el total")
	assert.False(t, out.SaldoAFavor)
	assert.Equal(t, companyID, guardada.CompanyID)
}

func TestCreateFactura_Duplicada(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	r.facturas.EXPECT().GetByNumero(gomock.Any(), companyID, "J-12345678-4", "0001").Return(facturaPendiente(), nil)

	_, err := uc.CreateFactura(context.Background(), companyID, dto.CreateFacturaRequest{
		Numero: "0001", Fecha: time.Now(), ProveedorNombre: "X", ProveedorRIF: "J-12345678-4",
		BaseImponible: d("10"), TasaCambio: d("36"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateFactura_ValidacionesSinTocarRepositorio(t *testing.T) {
	base := dto.CreateFacturaRequest{
		Numero: "0001", Fecha: time.Now(), ProveedorNombre: "X", ProveedorRIF: "J-12345678-4",
		BaseImponible: d("10"), AlicuotaIVA: d("16"), TasaCambio: d("36"),
	}
	tests := []struct {
		name   string
		mutate func(*dto.CreateFacturaRequest)
		want   error
	}{
		{"sin numero", func(in *dto.CreateFacturaRequest) { in.Numero = "  " }, domain.ErrInvalidInput},
		{"sin fecha", func(in *dto.CreateFacturaRequest) { in.Fecha = time.Time{} }, domain.ErrInvalidInput},
		{"rif invalido", func(in *dto.CreateFacturaRequest) { in.ProveedorRIF = "X-1" }, domain.ErrInvalidInput},
		{"base negativa", func(in *dto.CreateFacturaRequest) { in.BaseImponible = d("-1") }, domain.ErrInvalidInput},
		{"alicuota > 100", func(in *dto.CreateFacturaRequest) { in.AlicuotaIVA = d("101") }, domain.ErrInvalidInput},
		{"tasa cero", func(in *dto.CreateFacturaRequest) { in.TasaCambio = decimal.Zero }, domain.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRepos(t)
			uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
			in := base
			tt.mutate(&in)
			_, err := uc.CreateFactura(context.Background(), companyID, in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetFactura / ListFacturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetFactura_OtraEmpresaEsForbidden(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	f := facturaPendiente()
	f.CompanyID = "otra"
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(f, nil)

	_, err := uc.GetFactura(context.Background(), companyID, "fac-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetFactura_NoExiste(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	r.facturas.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

	_, err := uc.GetFactura(context.Background(), companyID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetFactura_SobreAcreditadaEsSaldoAFavor(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	r.notasCr.EXPECT().ListByFactura(gomock.Any(), "fac-1").Return([]*entity.NotaCredito{
		{ID: "nc-1", Total: d("1000")},
		{ID: "nc-2", Total: d("500")},
	}, nil)
	r.notasDb.EXPECT().GetByFactura(gomock.Any(), "fac-1").Return(nil, nil)

	out, err := uc.GetFactura(context.Background(), companyID, "fac-1")
	require.NoError(t, err)
	assert.True(t, d("-340").Equal(out.MontoFinal))
	assert.True(t, out.SaldoAFavor)
	assert.Len(t, out.NotasCredito, 2)
	assert.Nil(t, out.NotaDebito)
}

func TestListFacturas_MontoFinalPorFila(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())

	f1 := facturaPendiente()
	f2 := facturaPendiente()
	f2.ID = "fac-2"
	f2.Estado = entity.FacturaPagada

	r.facturas.EXPECT().List(gomock.Any(), companyID, entity.FacturaFiltro{}, 20, 0).Return([]*entity.Factura{f1, f2}, 2, nil)
	r.notasCr.EXPECT().ListByFacturas(gomock.Any(), []string{"fac-1", "fac-2"}).Return(map[string][]*entity.NotaCredito{
		"fac-1": {{ID: "nc-1", Total: d("160")}},
	}, nil)
	r.notasDb.EXPECT().ListByFacturas(gomock.Any(), []string{"fac-1", "fac-2"}).Return(map[string]*entity.NotaDebito{
		"fac-2": {ID: "nd-1", MontoNetoPagarNotaDebito: d("3586.2069")},
	}, nil)

	out, err := uc.ListFacturas(context.Background(), companyID, entity.FacturaFiltro{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, 20, out.Page.Limit)
	assert.True(t, d("1000").Equal(out.Items[0].MontoFinal))
	assert.True(t, d("4746.2069").Equal(out.Items[1].MontoFinal))
}

func TestParseFiltro(t *testing.T) {
	f, err := ParseFiltro(dto.FacturaFiltroRequest{Proveedor: " caracas ", Estado: "pendiente", Desde: "2024-01-01", Hasta: "2024-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "caracas", f.Proveedor)
	require.NotNil(t, f.Desde)
	require.NotNil(t, f.Hasta)
	assert.Equal(t, 31, f.Hasta.Day())
	assert.Equal(t, 23, f.Hasta.Hour(), "hasta es inclusivo")

	_, err = ParseFiltro(dto.FacturaFiltroRequest{Desde: "01/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = ParseFiltro(dto.FacturaFiltroRequest{Estado: "anulada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = ParseFiltro(dto.FacturaFiltroRequest{Desde: "2024-02-01", Hasta: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateNotaCredito
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateNotaCredito_UsaTasaDeLaFactura(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	r.notasCr.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	out, err := uc.CreateNotaCredito(context.Background(), companyID, "fac-1", dto.CreateNotaCreditoRequest{
		Numero: "NC-1", Fecha: time.Now(), BaseImponible: d("100"), AlicuotaIVA: d("16"),
	})
	require.NoError(t, err)
	assert.Equal(t, "00001234", out.FacturaAfectada)
	assert.True(t, d("36").Equal(out.TasaCambio))
	assert.True(t, d("116").Equal(out.Total))
	assert.Equal(t, "3.2222", round4(out.MontoUSD))
}

func TestCreateNotaCredito_FacturaPagadaEsConflicto(t *testing.T) {
	r := newRepos(t)
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	f := facturaPendiente()
	f.Estado = entity.FacturaPagada
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(f, nil)

	_, err := uc.CreateNotaCredito(context.Background(), companyID, "fac-1", dto.CreateNotaCreditoRequest{
		Numero: "NC-1", Fecha: time.Now(), BaseImponible: d("100"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateNotaCredito_LecturaEInsercionEnLaMismaTransaccion(t *testing.T) {
	r := newRepos(t)
	tx := &fakeTx{r: r}
	uc := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, tx, logger.Nop())
	gomock.InOrder(
		r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil),
		r.notasCr.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conexión perdida")),
	)

	_, err := uc.CreateNotaCredito(context.Background(), companyID, "fac-1", dto.CreateNotaCreditoRequest{
		Numero: "NC-1", Fecha: time.Now(), BaseImponible: d("100"),
	})
	require.Error(t, err)
	assert.Equal(t, 1, tx.corridas)
	assert.True(t, tx.rolledBack)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pago y nota de débito
// ──────────────────────────────────────────────────────────────────────────────

func TestPreviewNotaDebito_NoPersiste(t *testing.T) {
	r := newRepos(t)
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	r.notasCr.EXPECT().ListByFactura(gomock.Any(), "fac-1").Return(nil, nil)

	out, err := uc.PreviewNotaDebito(context.Background(), companyID, "fac-1", d("40"))
	require.NoError(t, err)
	assert.True(t, d("4000").Equal(out.DiferencialCambiarioConIVA))
	assert.Equal(t, "3586.2069", round4(out.MontoNetoPagarNotaDebito))
	assert.Empty(t, out.ID)
}

func TestRegistrarPago_GeneraNotaYMarcaPagada(t *testing.T) {
	r := newRepos(t)
	tx := &fakeTx{r: r}
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, tx, logger.Nop())
	fijo := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fijo }

	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	r.notasCr.EXPECT().ListByFactura(gomock.Any(), "fac-1").Return([]*entity.NotaCredito{
		{ID: "nc-1", MontoUSD: d("200"), Total: d("7200")},
	}, nil)
	r.notasDb.EXPECT().NextNumero(gomock.Any(), companyID).Return("ND-00000001", nil)
	var guardada *entity.NotaDebito
	r.notasDb.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, nd *entity.NotaDebito) error {
		guardada = nd
		return nil
	})
	r.facturas.EXPECT().UpdateEstado(gomock.Any(), "fac-1", entity.FacturaPagada, fijo).Return(nil)

	out, err := uc.RegistrarPago(context.Background(), companyID, "user-1", "fac-1", dto.RegistrarPagoRequest{TasaCambioPago: d("40")})
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.False(t, tx.rolledBack)

	assert.Equal(t, entity.FacturaPagada, out.Estado)
	assert.Equal(t, "ND-00000001", out.NotaDebito.Numero)
	assert.Equal(t, []string{"nc-1"}, out.NotaDebito.NotasCreditoIDs)
	assert.True(t, d("800").Equal(out.NotaDebito.MontoUSDNeto))
	assert.True(t, d("3200").Equal(out.NotaDebito.DiferencialCambiarioConIVA))
	assert.Equal(t, "2868.9655", round4(out.NotaDebito.MontoNetoPagarNotaDebito))
	// 1160 - 7200 + 2868.9655
	assert.Equal(t, "-3171.0345", round4(out.MontoFinal))
	assert.Equal(t, "user-1", guardada.CreatedBy)
	assert.Equal(t, fijo, guardada.Fecha)
}

func TestRegistrarPago_YaPagadaEsConflicto(t *testing.T) {
	r := newRepos(t)
	tx := &fakeTx{r: r}
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, tx, logger.Nop())
	f := facturaPendiente()
	f.Estado = entity.FacturaPagada
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(f, nil)

	_, err := uc.RegistrarPago(context.Background(), companyID, "user-1", "fac-1", dto.RegistrarPagoRequest{TasaCambioPago: d("40")})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, tx.rolledBack)
}

func TestRegistrarPago_TasaInvalidaNoAbreTransaccion(t *testing.T) {
	r := newRepos(t)
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())

	_, err := uc.RegistrarPago(context.Background(), companyID, "user-1", "fac-1", dto.RegistrarPagoRequest{TasaCambioPago: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestRegistrarPago_ErrorAlGuardarHaceRollback(t *testing.T) {
	r := newRepos(t)
	tx := &fakeTx{r: r}
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, tx, logger.Nop())
	boom := errors.New("db caída")

	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	r.notasCr.EXPECT().ListByFactura(gomock.Any(), "fac-1").Return(nil, nil)
	r.notasDb.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

	_, err := uc.RegistrarPago(context.Background(), companyID, "user-1", "fac-1", dto.RegistrarPagoRequest{TasaCambioPago: d("40"), Numero: "ND-9"})
	assert.ErrorIs(t, err, boom)
	assert.True(t, tx.rolledBack)
}

func TestUpdateNotaDebito_NuevaTasaRecalcula(t *testing.T) {
	r := newRepos(t)
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())

	nd := &entity.NotaDebito{ID: "nd-1", CompanyID: companyID, FacturaID: "fac-1", NotasCreditoIDs: []string{"nc-1"}}
	r.notasDb.EXPECT().GetByID(gomock.Any(), "nd-1").Return(nd, nil)
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	// nc-2 se registró después del pago: no entra en el recálculo
	r.notasCr.EXPECT().ListByFactura(gomock.Any(), "fac-1").Return([]*entity.NotaCredito{
		{ID: "nc-1", MontoUSD: d("200")},
		{ID: "nc-2", MontoUSD: d("300")},
	}, nil)
	r.notasDb.EXPECT().Update(gomock.Any(), nd).Return(nil)

	tasa := d("40")
	out, err := uc.UpdateNotaDebito(context.Background(), companyID, "nd-1", dto.UpdateNotaDebitoRequest{TasaCambioPago: &tasa})
	require.NoError(t, err)
	assert.True(t, d("800").Equal(out.MontoUSDNeto))
	assert.True(t, d("3200").Equal(out.DiferencialCambiarioConIVA))
}

func TestUpdateNotaDebito_SoloFechaNoRecalcula(t *testing.T) {
	r := newRepos(t)
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())

	nd := &entity.NotaDebito{ID: "nd-1", CompanyID: companyID, FacturaID: "fac-1", DiferencialCambiarioConIVA: d("4000")}
	r.notasDb.EXPECT().GetByID(gomock.Any(), "nd-1").Return(nd, nil)
	r.notasDb.EXPECT().Update(gomock.Any(), nd).Return(nil)

	fecha := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	out, err := uc.UpdateNotaDebito(context.Background(), companyID, "nd-1", dto.UpdateNotaDebitoRequest{Fecha: &fecha})
	require.NoError(t, err)
	require.NotNil(t, out.Fecha)
	assert.Equal(t, fecha, *out.Fecha)
	assert.True(t, d("4000").Equal(out.DiferencialCambiarioConIVA))
}

func TestUpdateNotaDebito_TasaInvalida(t *testing.T) {
	r := newRepos(t)
	uc := NewPagoUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())

	r.notasDb.EXPECT().GetByID(gomock.Any(), "nd-1").Return(&entity.NotaDebito{ID: "nd-1", CompanyID: companyID, FacturaID: "fac-1"}, nil)
	r.facturas.EXPECT().GetByID(gomock.Any(), "fac-1").Return(facturaPendiente(), nil)
	r.notasCr.EXPECT().ListByFactura(gomock.Any(), "fac-1").Return(nil, nil)

	cero := decimal.Zero
	_, err := uc.UpdateNotaDebito(context.Background(), companyID, "nd-1", dto.UpdateNotaDebitoRequest{TasaCambioPago: &cero})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportes
// ──────────────────────────────────────────────────────────────────────────────

type xlsxSpy struct{ rows []FacturaExportRow }

func (s *xlsxSpy) GenerateFacturasXLSX(_ context.Context, rows []FacturaExportRow) ([]byte, error) {
	s.rows = rows
	return []byte("xlsx"), nil
}

func TestExportFacturasXLSX_IncluyeMontoFinal(t *testing.T) {
	r := newRepos(t)
	facturas := NewFacturaUseCase(r.facturas, r.notasCr, r.notasDb, &fakeTx{r: r}, logger.Nop())
	spy := &xlsxSpy{}
	uc := NewExportUseCase(facturas, r.facturas, nil, spy, nil)

	r.facturas.EXPECT().List(gomock.Any(), companyID, entity.FacturaFiltro{}, exportBatch, 0).Return([]*entity.Factura{facturaPendiente()}, 1, nil)
	r.notasCr.EXPECT().ListByFacturas(gomock.Any(), []string{"fac-1"}).Return(map[string][]*entity.NotaCredito{
		"fac-1": {{ID: "nc-1", Total: d("1500")}},
	}, nil)
	r.notasDb.EXPECT().ListByFacturas(gomock.Any(), []string{"fac-1"}).Return(map[string]*entity.NotaDebito{}, nil)

	out, err := uc.ExportFacturasXLSX(context.Background(), companyID, entity.FacturaFiltro{})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), out)
	require.Len(t, spy.rows, 1)
	assert.True(t, d("1500").Equal(spy.rows[0].TotalNotaCredito))
	assert.True(t, d("-340").Equal(spy.rows[0].MontoFinal))
}
