// Package precios consulta las listas de precios de los POS externos.
package precios

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// OrigenTodos combina principal y sucursal.
const OrigenTodos = "todos"

// UseCase búsqueda de precios.
type UseCase struct {
	catalog ports.PriceCatalog
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog ports.PriceCatalog, log *logger.Logger) *UseCase {
	return &UseCase{catalog: catalog, log: log.WithComponent("precios")}
}

// BuscarPrecios busca en uno o ambos POS. Con tasa > 0 agrega el precio en Bs.
// Con origen todos, si un POS falla se devuelve lo del otro y se registra la falla.
func (uc *UseCase) BuscarPrecios(ctx context.Context, origen, q string, page dto.PageRequest, tasa decimal.Decimal) (*dto.PrecioListResponse, error) {
	origen = strings.ToLower(strings.TrimSpace(origen))
	if origen == "" {
		origen = OrigenTodos
	}
	if tasa.IsNegative() {
		return nil, fmt.Errorf("%w: tasa negativa", domain.ErrInvalidInput)
	}
	page.Normalize()
	q = strings.TrimSpace(q)

	var (
		items []*entity.PrecioProducto
		total int
		err   error
	)
	switch origen {
	case entity.OrigenPrincipal, entity.OrigenSucursal:
		items, total, err = uc.catalog.Buscar(ctx, origen, q, page.Limit, page.Offset)
	case OrigenTodos:
		items, total, err = uc.buscarAmbos(ctx, q, page.Limit, page.Offset)
	default:
		return nil, fmt.Errorf("%w: origen %q", domain.ErrInvalidInput, origen)
	}
	if err != nil {
		return nil, err
	}

	out := &dto.PrecioListResponse{
		Items: make([]dto.PrecioResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, p := range items {
		r := dto.PrecioResponse{
			Origen:      p.Origen,
			Codigo:      p.Codigo,
			Descripcion: p.Descripcion,
			PrecioUSD:   p.Precio,
			Existencia:  p.Existencia,
		}
		if tasa.IsPositive() {
			bs := p.Precio.Mul(tasa)
			r.PrecioBs = &bs
		}
		out.Items = append(out.Items, r)
	}
	return out, nil
}

// buscarAmbos consulta los dos POS en paralelo y pagina sobre la unión ordenada por código.
// Cada POS entrega sus primeras offset+limit filas en orden de código; la mezcla
// conserva ese orden, de modo que una página depende solo de esos prefijos.
func (uc *UseCase) buscarAmbos(ctx context.Context, q string, limit, offset int) ([]*entity.PrecioProducto, int, error) {
	type result struct {
		origen string
		items  []*entity.PrecioProducto
		total  int
		err    error
	}
	origenes := []string{entity.OrigenPrincipal, entity.OrigenSucursal}
	ch := make(chan result, len(origenes))
	for _, o := range origenes {
		go func(origen string) {
			items, total, err := uc.catalog.Buscar(ctx, origen, q, offset+limit, 0)
			ch <- result{origen, items, total, err}
		}(o)
	}

	var (
		porOrigen = map[string][]*entity.PrecioProducto{}
		total     int
		fallas    []error
	)
	for range origenes {
		r := <-ch
		if r.err != nil {
			uc.log.Warn().Err(r.err).Str("origen", r.origen).Msg("POS no disponible")
			fallas = append(fallas, fmt.Errorf("%s: %w", r.origen, r.err))
			continue
		}
		porOrigen[r.origen] = r.items
		total += r.total
	}
	if len(fallas) == len(origenes) {
		return nil, 0, fmt.Errorf("precios: ningún POS respondió: %w", fallas[0])
	}

	merged := mezclarPorCodigo(porOrigen[entity.OrigenPrincipal], porOrigen[entity.OrigenSucursal])
	if offset >= len(merged) {
		return []*entity.PrecioProducto{}, total, nil
	}
	merged = merged[offset:]
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, total, nil
}

// mezclarPorCodigo une dos listas ordenadas por código (byte a byte, igual que COLLATE "C")
// sin reordenarlas. Con el mismo código va primero principal.
func mezclarPorCodigo(principal, sucursal []*entity.PrecioProducto) []*entity.PrecioProducto {
	out := make([]*entity.PrecioProducto, 0, len(principal)+len(sucursal))
	i, j := 0, 0
	for i < len(principal) && j < len(sucursal) {
		if sucursal[j].Codigo < principal[i].Codigo {
			out = append(out, sucursal[j])
			j++
			continue
		}
		out = append(out, principal[i])
		i++
	}
	out = append(out, principal[i:]...)
	return append(out, sucursal[j:]...)
}
