package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de Querier: registran el SQL y devuelven resultados vacíos
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuerier struct {
	sqls  []string
	count int
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.sqls = append(q.sqls, sql)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sqls = append(q.sqls, sql)
	return emptyRows{}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sqls = append(q.sqls, sql)
	return countRow{n: q.count}
}

// countRow responde COUNT(*) y, para cualquier otro scan, sin filas.
type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	if len(dest) == 1 {
		if p, ok := dest[0].(*int); ok {
			*p = r.n
			return nil
		}
	}
	return pgx.ErrNoRows
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT 0") }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// fakeTx se comporta como pgx.Tx para los repositorios; solo delega las consultas.
type fakeTx struct {
	pgx.Tx
	q *fakeQuerier
}

func (t fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.q.Exec(ctx, sql, args...)
}

func (t fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.q.Query(ctx, sql, args...)
}

func (t fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.q.QueryRow(ctx, sql, args...)
}

func lastSQL(q *fakeQuerier) string {
	return strings.Join(strings.Fields(q.sqls[len(q.sqls)-1]), " ")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden estable de listados paginados
// ──────────────────────────────────────────────────────────────────────────────

func TestFacturaRepo_ListOrdenTotalConID(t *testing.T) {
	q := &fakeQuerier{count: 1200}
	repo := NewFacturaRepository(q)

	_, total, err := repo.List(context.Background(), "company-1", entity.FacturaFiltro{}, 500, 500)
	require.NoError(t, err)
	assert.Equal(t, 1200, total)
	assert.Contains(t, lastSQL(q), "ORDER BY fecha DESC, numero DESC, id LIMIT")
}

func TestCreditoRepo_ListOrdenTotalConID(t *testing.T) {
	q := &fakeQuerier{count: 3}
	repo := NewCreditoRepository(q)

	_, _, err := repo.List(context.Background(), "company-1", entity.CreditoFiltro{Vencidos: true}, time.Now(), 500, 0)
	require.NoError(t, err)
	assert.Contains(t, lastSQL(q), "ORDER BY fecha_vencimiento, fecha, id LIMIT")
}

// ──────────────────────────────────────────────────────────────────────────────
// Bloqueo de fila dentro de transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestFacturaRepo_GetByIDBloqueaSoloEnTransaccion(t *testing.T) {
	q := &fakeQuerier{}

	f, err := NewFacturaRepository(q).GetByID(context.Background(), "fac-1")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.NotContains(t, lastSQL(q), "FOR UPDATE")

	_, err = NewFacturaRepository(fakeTx{q: q}).GetByID(context.Background(), "fac-1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(lastSQL(q), "WHERE id = $1 FOR UPDATE"))
}

func TestCreditoRepo_GetByIDBloqueaEnTransaccion(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewCreditoRepository(fakeTx{q: q}).GetByID(context.Background(), "cred-1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(lastSQL(q), "FOR UPDATE"))
}
