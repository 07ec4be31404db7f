package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/application/creditos"
	"github.com/jhoicas/Backoffice-api/internal/application/cuentasporpagar"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// Ensure TxRunner implements cuentasporpagar.PagoTxRunner and creditos.TxRunner.
var _ cuentasporpagar.PagoTxRunner = (*TxRunner)(nil)
var _ creditos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPago inicia una transacción con los repos de cuentas por pagar (registro de pago).
func (r *TxRunner) RunPago(ctx context.Context, fn func(
	facturaRepo repository.FacturaRepository,
	notaCreditoRepo repository.NotaCreditoRepository,
	notaDebitoRepo repository.NotaDebitoRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewFacturaRepository(tx), NewNotaCreditoRepository(tx), NewNotaDebitoRepository(tx))
	})
}

// RunCredito inicia una transacción con el repo de créditos (registro de abonos).
func (r *TxRunner) RunCredito(ctx context.Context, fn func(repo repository.CreditoRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCreditoRepository(tx))
	})
}

// run hace Commit si fn no falla; en cualquier otro caso Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
