package ports

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// PriceCatalog puerto de salida hacia las bases de datos POS externas.
// Cada origen (principal, sucursal) es una conexión distinta; el adaptador debe acotar
// cada consulta con un timeout para no bloquear el backoffice si el POS no responde.
type PriceCatalog interface {
	// Buscar filtra por código o descripción (vacío = todos) y devuelve la página y el total.
	Buscar(ctx context.Context, origen, q string, limit, offset int) ([]*entity.PrecioProducto, int, error)
}
