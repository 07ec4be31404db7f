package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CajaRepository puerto de persistencia para sesiones y movimientos de caja.
type CajaRepository interface {
	CreateSesion(ctx context.Context, sesion *entity.SesionCaja) error
	GetSesion(ctx context.Context, id string) (*entity.SesionCaja, error)
	// GetAbierta devuelve la sesión abierta del punto de venta o nil.
	GetAbierta(ctx context.Context, companyID string, puntoDeVenta int) (*entity.SesionCaja, error)
	// Cerrar persiste los montos del arqueo y el estado cerrada.
	Cerrar(ctx context.Context, sesion *entity.SesionCaja) error
	CreateMovimiento(ctx context.Context, mov *entity.MovimientoCaja) error
	ListMovimientos(ctx context.Context, sesionID string) ([]*entity.MovimientoCaja, error)
}
