package resumen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

type fakeRepo struct {
	from, to time.Time
	cajasErr error
}

func (f *fakeRepo) GetCuentasPorPagar(context.Context, string, time.Time) (repository.CxPResult, error) {
	return repository.CxPResult{FacturasPendientes: 3, VencidasPendientes: 1, TotalPendiente: decimal.RequireFromString("12500.456")}, nil
}

func (f *fakeRepo) GetDiferencialCambiario(_ context.Context, _ string, from, to time.Time) (decimal.Decimal, error) {
	f.from, f.to = from, to
	return decimal.RequireFromString("3586.2069"), nil
}

func (f *fakeRepo) GetCreditos(context.Context, string, time.Time) (repository.CreditosResult, error) {
	return repository.CreditosResult{Pendientes: 4, SaldoTotal: decimal.NewFromInt(8000), Vencidos: 2, SaldoVencido: decimal.NewFromInt(1500)}, nil
}

func (f *fakeRepo) CountCajasAbiertas(context.Context, string) (int, error) {
	return 2, f.cajasErr
}

func TestGetResumen(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo)
	uc.now = func() time.Time { return time.Date(2024, 6, 18, 15, 30, 0, 0, time.UTC) }

	out, err := uc.GetResumen(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 3, out.FacturasPendientes)
	assert.Equal(t, 1, out.FacturasVencidas)
	assert.Equal(t, "12500.46", out.TotalPorPagar.StringFixed(2))
	assert.Equal(t, "3586.21", out.DiferencialMes.StringFixed(2))
	assert.Equal(t, 2, out.CreditosVencidos)
	assert.Equal(t, 2, out.CajasAbiertas)
	assert.Equal(t, "Junio 2024", out.DateLabel)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, 18, repo.to.Day())
	assert.Equal(t, 23, repo.to.Hour())
}

func TestGetResumen_PropagaError(t *testing.T) {
	boom := errors.New("db")
	uc := NewUseCase(&fakeRepo{cajasErr: boom})
	_, err := uc.GetResumen(context.Background(), "c1")
	assert.ErrorIs(t, err, boom)
}
