package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// FacturaRepository define el puerto de persistencia para facturas por pagar.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=factura_repository.go
type FacturaRepository interface {
	Create(ctx context.Context, factura *entity.Factura) error
	GetByID(ctx context.Context, id string) (*entity.Factura, error)
	// GetByNumero busca por empresa + RIF del proveedor + número (clave de negocio).
	GetByNumero(ctx context.Context, companyID, proveedorRIF, numero string) (*entity.Factura, error)
	// List devuelve la página solicitada y el total de filas que cumplen el filtro.
	List(ctx context.Context, companyID string, filtro entity.FacturaFiltro, limit, offset int) ([]*entity.Factura, int, error)
	UpdateEstado(ctx context.Context, id, estado string, at time.Time) error
}

// NotaCreditoRepository puerto de persistencia para notas de crédito.
type NotaCreditoRepository interface {
	Create(ctx context.Context, nota *entity.NotaCredito) error
	ListByFactura(ctx context.Context, facturaID string) ([]*entity.NotaCredito, error)
	// ListByFacturas agrupa por factura_id (para listados y exportes).
	ListByFacturas(ctx context.Context, facturaIDs []string) (map[string][]*entity.NotaCredito, error)
}

// NotaDebitoRepository puerto de persistencia para notas de débito por diferencial cambiario.
type NotaDebitoRepository interface {
	Create(ctx context.Context, nota *entity.NotaDebito) error
	GetByID(ctx context.Context, id string) (*entity.NotaDebito, error)
	GetByFactura(ctx context.Context, facturaID string) (*entity.NotaDebito, error)
	ListByFacturas(ctx context.Context, facturaIDs []string) (map[string]*entity.NotaDebito, error)
	// Update persiste fecha, tasa de pago y montos recalculados.
	Update(ctx context.Context, nota *entity.NotaDebito) error
	// NextNumero devuelve el siguiente consecutivo de nota de débito de la empresa.
	NextNumero(ctx context.Context, companyID string) (string, error)
}
