package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreditoRepository puerto de persistencia para ventas a crédito y sus abonos.
type CreditoRepository interface {
	Create(ctx context.Context, credito *entity.Credito) error
	GetByID(ctx context.Context, id string) (*entity.Credito, error)
	List(ctx context.Context, companyID string, filtro entity.CreditoFiltro, now time.Time, limit, offset int) ([]*entity.Credito, int, error)
	UpdateSaldo(ctx context.Context, id string, saldo decimal.Decimal, estado string, at time.Time) error
	CreateAbono(ctx context.Context, abono *entity.AbonoCredito) error
	ListAbonos(ctx context.Context, creditoID string) ([]*entity.AbonoCredito, error)
}
