package creditos

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type memRepo struct {
	creditos map[string]*entity.Credito
	abonos   []*entity.AbonoCredito
}

func newMemRepo() *memRepo { return &memRepo{creditos: map[string]*entity.Credito{}} }

func (m *memRepo) Create(_ context.Context, c *entity.Credito) error {
	cp := *c
	m.creditos[c.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*entity.Credito, error) {
	c, ok := m.creditos[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, companyID string, f entity.CreditoFiltro, now time.Time, limit, offset int) ([]*entity.Credito, int, error) {
	var out []*entity.Credito
	for _, c := range m.creditos {
		if c.CompanyID != companyID {
			continue
		}
		if f.Cliente != "" && !strings.Contains(strings.ToLower(c.ClienteNombre), strings.ToLower(f.Cliente)) {
			continue
		}
		if f.Estado != "" && c.Estado != f.Estado {
			continue
		}
		if f.Vencidos && !c.Vencido(now) {
			continue
		}
		out = append(out, c)
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *memRepo) UpdateSaldo(_ context.Context, id string, saldo decimal.Decimal, estado string, at time.Time) error {
	c := m.creditos[id]
	c.Saldo, c.Estado, c.UpdatedAt = saldo, estado, at
	return nil
}

func (m *memRepo) CreateAbono(_ context.Context, a *entity.AbonoCredito) error {
	m.abonos = append(m.abonos, a)
	return nil
}

func (m *memRepo) ListAbonos(_ context.Context, creditoID string) ([]*entity.AbonoCredito, error) {
	var out []*entity.AbonoCredito
	for _, a := range m.abonos {
		if a.CreditoID == creditoID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memTx struct{ repo *memRepo }

func (tx memTx) RunCredito(ctx context.Context, fn func(repository.CreditoRepository) error) error {
	return fn(tx.repo)
}

var hoy = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(repo *memRepo) *UseCase {
	uc := NewUseCase(repo, memTx{repo: repo}, nil, logger.Nop())
	uc.now = func() time.Time { return hoy }
	return uc
}

func crear(t *testing.T, uc *UseCase, monto string, vence time.Time) *dto.CreditoResponse {
	t.Helper()
	out, err := uc.CreateCredito(context.Background(), "c1", "u1", dto.CreateCreditoRequest{
		ClienteNombre:    "Bodega La Esquina",
		ClienteRIF:       "v-12345678-0",
		NumeroDocumento:  "FAC-77",
		Fecha:            hoy.AddDate(0, 0, -30),
		FechaVencimiento: vence,
		Monto:            d(monto),
		TasaCambio:       d("40"),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCredito_SaldoInicialYMontoUSD(t *testing.T) {
	uc := newUseCase(newMemRepo())
	out := crear(t, uc, "4000", hoy.AddDate(0, 0, 15))

	assert.True(t, d("4000").Equal(out.Saldo))
	assert.True(t, d("100").Equal(out.MontoUSD))
	assert.Equal(t, "V-12345678-0", out.ClienteRIF)
	assert.Equal(t, entity.CreditoPendiente, out.Estado)
	assert.False(t, out.Vencido)
}

func TestCreateCredito_Validaciones(t *testing.T) {
	uc := newUseCase(newMemRepo())
	_, err := uc.CreateCredito(context.Background(), "c1", "u1", dto.CreateCreditoRequest{
		ClienteNombre: "X", NumeroDocumento: "1", Fecha: hoy, FechaVencimiento: hoy.AddDate(0, 0, -1),
		Monto: d("10"), TasaCambio: d("40"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateCredito(context.Background(), "c1", "u1", dto.CreateCreditoRequest{
		ClienteNombre: "X", NumeroDocumento: "1", Fecha: hoy, FechaVencimiento: hoy,
		Monto: d("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestRegistrarAbono_ParcialYTotal(t *testing.T) {
	repo := newMemRepo()
	uc := newUseCase(repo)
	c := crear(t, uc, "1000", hoy.AddDate(0, 0, 15))

	out, err := uc.RegistrarAbono(context.Background(), "c1", "u1", c.ID, dto.RegistrarAbonoRequest{Monto: d("400"), Metodo: "Efectivo"})
	require.NoError(t, err)
	assert.True(t, d("600").Equal(out.Saldo))
	assert.Equal(t, entity.CreditoPendiente, out.Estado)

	out, err = uc.RegistrarAbono(context.Background(), "c1", "u1", c.ID, dto.RegistrarAbonoRequest{Monto: d("600"), Metodo: "transferencia", Referencia: "0102-991"})
	require.NoError(t, err)
	assert.True(t, out.Saldo.IsZero())
	assert.Equal(t, entity.CreditoPagado, out.Estado)

	detalle, err := uc.GetCredito(context.Background(), "c1", c.ID)
	require.NoError(t, err)
	assert.Len(t, detalle.Abonos, 2)
	assert.Equal(t, "efectivo", detalle.Abonos[0].Metodo)
}

func TestRegistrarAbono_ExcedeSaldo(t *testing.T) {
	repo := newMemRepo()
	uc := newUseCase(repo)
	c := crear(t, uc, "1000", hoy.AddDate(0, 0, 15))

	_, err := uc.RegistrarAbono(context.Background(), "c1", "u1", c.ID, dto.RegistrarAbonoRequest{Monto: d("1000.01"), Metodo: "efectivo"})
	assert.ErrorIs(t, err, domain.ErrAbonoExcedeSaldo)
	assert.Empty(t, repo.abonos)
}

func TestRegistrarAbono_MetodoYMontoInvalidos(t *testing.T) {
	uc := newUseCase(newMemRepo())
	_, err := uc.RegistrarAbono(context.Background(), "c1", "u1", "x", dto.RegistrarAbonoRequest{Monto: d("0"), Metodo: "efectivo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegistrarAbono(context.Background(), "c1", "u1", "x", dto.RegistrarAbonoRequest{Monto: d("1"), Metodo: "cheque"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarAbono_OtraEmpresa(t *testing.T) {
	uc := newUseCase(newMemRepo())
	c := crear(t, uc, "1000", hoy.AddDate(0, 0, 15))
	_, err := uc.RegistrarAbono(context.Background(), "c2", "u1", c.ID, dto.RegistrarAbonoRequest{Monto: d("1"), Metodo: "efectivo"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListCreditos_SoloVencidos(t *testing.T) {
	uc := newUseCase(newMemRepo())
	crear(t, uc, "1000", hoy.AddDate(0, 0, 15))
	vencido := crear(t, uc, "500", hoy.AddDate(0, 0, -1))

	out, err := uc.ListCreditos(context.Background(), "c1", entity.CreditoFiltro{Vencidos: true}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, vencido.ID, out.Items[0].ID)
	assert.True(t, out.Items[0].Vencido)
	assert.Equal(t, 1, out.Page.Total)

	_, err = uc.ListCreditos(context.Background(), "c1", entity.CreditoFiltro{Estado: "anulado"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
