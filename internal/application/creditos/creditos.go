// Package creditos ventas a crédito y registro de abonos.
package creditos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/diferencial"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
	"github.com/jhoicas/Backoffice-api/pkg/rif"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de créditos.
type TxRunner interface {
	RunCredito(ctx context.Context, fn func(repo repository.CreditoRepository) error) error
}

// XLSXGenerator genera la hoja de cálculo de créditos.
type XLSXGenerator interface {
	GenerateCreditosXLSX(ctx context.Context, creditos []*entity.Credito, now time.Time) ([]byte, error)
}

var metodosAbono = map[string]bool{
	entity.MetodoEfectivo:      true,
	entity.MetodoPunto:         true,
	entity.MetodoTransferencia: true,
	entity.MetodoDivisa:        true,
}

// UseCase casos de uso de créditos.
type UseCase struct {
	repo     repository.CreditoRepository
	txRunner TxRunner
	xlsx     XLSXGenerator
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. xlsx puede ser nil si no se exporta.
func NewUseCase(repo repository.CreditoRepository, txRunner TxRunner, xlsx XLSXGenerator, log *logger.Logger) *UseCase {
	return &UseCase{
		repo:     repo,
		txRunner: txRunner,
		xlsx:     xlsx,
		log:      log.WithComponent("creditos"),
		now:      time.Now,
	}
}

// CreateCredito registra una venta a crédito; el saldo inicial es el monto completo.
func (uc *UseCase) CreateCredito(ctx context.Context, companyID, userID string, in dto.CreateCreditoRequest) (*dto.CreditoResponse, error) {
	in.ClienteNombre = strings.TrimSpace(in.ClienteNombre)
	in.NumeroDocumento = strings.TrimSpace(in.NumeroDocumento)
	if in.ClienteNombre == "" || in.NumeroDocumento == "" || in.Fecha.IsZero() || in.FechaVencimiento.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaVencimiento.Before(in.Fecha) {
		return nil, fmt.Errorf("%w: el vencimiento es anterior a la fecha del documento", domain.ErrInvalidInput)
	}
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("%w: monto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !in.TasaCambio.IsPositive() {
		return nil, &diferencial.InvalidRateError{Campo: "tasa_cambio", Valor: in.TasaCambio}
	}
	clienteRIF := ""
	if strings.TrimSpace(in.ClienteRIF) != "" {
		var err error
		if clienteRIF, err = rif.Normalize(in.ClienteRIF); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	// Un crédito es un documento exento: base = monto, sin IVA.
	derivado := diferencial.RecalcularDocumento(diferencial.DocumentoInput{
		BaseImponible: in.Monto,
		TasaCambio:    in.TasaCambio,
	})

	now := uc.now()
	c := &entity.Credito{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		ClienteNombre:    in.ClienteNombre,
		ClienteRIF:       clienteRIF,
		NumeroDocumento:  in.NumeroDocumento,
		Fecha:            in.Fecha,
		FechaVencimiento: in.FechaVencimiento,
		Monto:            derivado.Total,
		TasaCambio:       in.TasaCambio,
		MontoUSD:         derivado.MontoUSD,
		Saldo:            derivado.Total,
		Estado:           entity.CreditoPendiente,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", companyID).Str("credito_id", c.ID).Msg("crédito registrado")
	out := toCreditoResponse(c, now)
	return &out, nil
}

// GetCredito crédito con sus abonos.
func (uc *UseCase) GetCredito(ctx context.Context, companyID, id string) (*dto.CreditoDetailResponse, error) {
	c, err := cargarCredito(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	abonos, err := uc.repo.ListAbonos(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.CreditoDetailResponse{
		CreditoResponse: toCreditoResponse(c, uc.now()),
		Abonos:          make([]dto.AbonoResponse, 0, len(abonos)),
	}
	for _, a := range abonos {
		out.Abonos = append(out.Abonos, toAbonoResponse(a))
	}
	return out, nil
}

// ListCreditos listado paginado filtrado por cliente, estado y vencimiento.
func (uc *UseCase) ListCreditos(ctx context.Context, companyID string, filtro entity.CreditoFiltro, page dto.PageRequest) (*dto.CreditoListResponse, error) {
	if filtro.Estado != "" && filtro.Estado != entity.CreditoPendiente && filtro.Estado != entity.CreditoPagado {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, filtro.Estado)
	}
	page.Normalize()
	now := uc.now()
	list, total, err := uc.repo.List(ctx, companyID, filtro, now, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CreditoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCreditoResponse(c, now))
	}
	return &dto.CreditoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// RegistrarAbono descuenta el abono del saldo dentro de una transacción.
// Un abono mayor al saldo devuelve ErrAbonoExcedeSaldo; con saldo cero el crédito queda pagado.
func (uc *UseCase) RegistrarAbono(ctx context.Context, companyID, userID, creditoID string, in dto.RegistrarAbonoRequest) (*dto.CreditoResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, fmt.Errorf("%w: monto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	in.Metodo = strings.ToLower(strings.TrimSpace(in.Metodo))
	if !metodosAbono[in.Metodo] {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.Metodo)
	}
	now := uc.now()
	fecha := now
	if in.Fecha != nil && !in.Fecha.IsZero() {
		fecha = *in.Fecha
	}

	var out dto.CreditoResponse
	err := uc.txRunner.RunCredito(ctx, func(repo repository.CreditoRepository) error {
		c, err := cargarCredito(ctx, repo, companyID, creditoID)
		if err != nil {
			return err
		}
		if c.Estado == entity.CreditoPagado {
			return fmt.Errorf("%w: el crédito ya está pagado", domain.ErrConflict)
		}
		if in.Monto.GreaterThan(c.Saldo) {
			return fmt.Errorf("%w: saldo %s, abono %s", domain.ErrAbonoExcedeSaldo, c.Saldo.StringFixed(2), in.Monto.StringFixed(2))
		}

		abono := &entity.AbonoCredito{
			ID:         uuid.New().String(),
			CreditoID:  c.ID,
			Monto:      in.Monto,
			Metodo:     in.Metodo,
			Referencia: strings.TrimSpace(in.Referencia),
			Fecha:      fecha,
			CreatedBy:  userID,
		}
		if err := repo.CreateAbono(ctx, abono); err != nil {
			return err
		}

		c.Saldo = c.Saldo.Sub(in.Monto)
		if c.Saldo.Equal(decimal.Zero) {
			c.Estado = entity.CreditoPagado
		}
		c.UpdatedAt = now
		if err := repo.UpdateSaldo(ctx, c.ID, c.Saldo, c.Estado, now); err != nil {
			return err
		}
		out = toCreditoResponse(c, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("credito_id", creditoID).Str("saldo", out.Saldo.StringFixed(2)).Str("estado", out.Estado).Msg("abono registrado")
	return &out, nil
}

// ExportCreditosXLSX hoja con todos los créditos que cumplen el filtro.
func (uc *UseCase) ExportCreditosXLSX(ctx context.Context, companyID string, filtro entity.CreditoFiltro) ([]byte, error) {
	if uc.xlsx == nil {
		return nil, fmt.Errorf("exporte xlsx no configurado")
	}
	const batch = 500
	now := uc.now()
	var all []*entity.Credito
	for offset := 0; ; offset += batch {
		list, total, err := uc.repo.List(ctx, companyID, filtro, now, batch, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
		if len(list) < batch || offset+len(list) >= total {
			break
		}
	}
	return uc.xlsx.GenerateCreditosXLSX(ctx, all, now)
}

func cargarCredito(ctx context.Context, repo repository.CreditoRepository, companyID, id string) (*entity.Credito, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func toCreditoResponse(c *entity.Credito, now time.Time) dto.CreditoResponse {
	return dto.CreditoResponse{
		ID:               c.ID,
		ClienteNombre:    c.ClienteNombre,
		ClienteRIF:       c.ClienteRIF,
		NumeroDocumento:  c.NumeroDocumento,
		Fecha:            c.Fecha,
		FechaVencimiento: c.FechaVencimiento,
		Monto:            c.Monto,
		TasaCambio:       c.TasaCambio,
		MontoUSD:         c.MontoUSD,
		Saldo:            c.Saldo,
		Estado:           c.Estado,
		Vencido:          c.Vencido(now),
	}
}

func toAbonoResponse(a *entity.AbonoCredito) dto.AbonoResponse {
	return dto.AbonoResponse{
		ID:         a.ID,
		Monto:      a.Monto,
		Metodo:     a.Metodo,
		Referencia: a.Referencia,
		Fecha:      a.Fecha,
	}
}
