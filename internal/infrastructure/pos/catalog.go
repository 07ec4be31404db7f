// Package pos adaptador de lectura hacia las bases de datos de los puntos de venta.
package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

var _ ports.PriceCatalog = (*Catalog)(nil)

// DefaultTimeout tiempo máximo por consulta si no se configura otro.
const DefaultTimeout = 5 * time.Second

// Catalog lee la lista de precios de los POS principal y sucursal.
// Cada pool es propio del origen; un pool nil deshabilita ese origen.
type Catalog struct {
	pools   map[string]*pgxpool.Pool
	timeout time.Duration
}

// NewCatalog construye el adaptador con los pools de cada origen.
func NewCatalog(principal, sucursal *pgxpool.Pool, timeout time.Duration) *Catalog {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Catalog{
		pools: map[string]*pgxpool.Pool{
			entity.OrigenPrincipal: principal,
			entity.OrigenSucursal:  sucursal,
		},
		timeout: timeout,
	}
}

const (
	countQuery = `
		SELECT COUNT(*) FROM productos
		WHERE $1 = '' OR codigo ILIKE $2 OR descripcion ILIKE $2`
	listQuery = `
		SELECT codigo, descripcion, precio, existencia FROM productos
		WHERE $1 = '' OR codigo ILIKE $2 OR descripcion ILIKE $2
		ORDER BY codigo COLLATE "C"
		LIMIT $3 OFFSET $4`
)

// Buscar filtra por código o descripción en el POS indicado.
func (c *Catalog) Buscar(ctx context.Context, origen, q string, limit, offset int) ([]*entity.PrecioProducto, int, error) {
	pool, ok := c.pools[origen]
	if !ok {
		return nil, 0, fmt.Errorf("%w: origen %q", domain.ErrInvalidInput, origen)
	}
	if pool == nil {
		return nil, 0, fmt.Errorf("%w: origen %s no configurado", domain.ErrUnavailable, origen)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: conexión %s: %v", domain.ErrUnavailable, origen, err)
	}
	defer conn.Release()

	q = strings.TrimSpace(q)
	pattern := "%" + escapeLike(q) + "%"

	var total int
	if err := conn.QueryRow(ctx, countQuery, q, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: contar precios %s: %v", domain.ErrUnavailable, origen, err)
	}

	rows, err := conn.Query(ctx, listQuery, q, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: listar precios %s: %v", domain.ErrUnavailable, origen, err)
	}
	defer rows.Close()

	var out []*entity.PrecioProducto
	for rows.Next() {
		p := &entity.PrecioProducto{Origen: origen}
		if err := rows.Scan(&p.Codigo, &p.Descripcion, &p.Precio, &p.Existencia); err != nil {
			return nil, 0, fmt.Errorf("scan precio %s: %w", origen, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: precios %s: %v", domain.ErrUnavailable, origen, err)
	}
	return out, total, nil
}

// Configurado informa si el origen tiene pool.
func (c *Catalog) Configurado(origen string) bool {
	return c.pools[origen] != nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
