package precios

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fakeCatalog lista fija por origen; caido simula un POS sin respuesta.
type fakeCatalog struct {
	data  map[string][]*entity.PrecioProducto
	caido map[string]bool
}

func (f *fakeCatalog) Buscar(_ context.Context, origen, _ string, limit, offset int) ([]*entity.PrecioProducto, int, error) {
	if f.caido[origen] {
		return nil, 0, errors.New("timeout")
	}
	all := f.data[origen]
	if offset > len(all) {
		offset = len(all)
	}
	out := all[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, len(all), nil
}

func catalogo() *fakeCatalog {
	return &fakeCatalog{
		data: map[string][]*entity.PrecioProducto{
			entity.OrigenPrincipal: {
				{Origen: entity.OrigenPrincipal, Codigo: "A01", Descripcion: "Harina PAN", Precio: d("1.20")},
				{Origen: entity.OrigenPrincipal, Codigo: "C03", Descripcion: "Café", Precio: d("4.50")},
			},
			entity.OrigenSucursal: {
				{Origen: entity.OrigenSucursal, Codigo: "A01", Descripcion: "Harina PAN", Precio: d("1.25")},
				{Origen: entity.OrigenSucursal, Codigo: "B02", Descripcion: "Arroz", Precio: d("1.10")},
			},
		},
		caido: map[string]bool{},
	}
}

func TestBuscarPrecios_UnOrigenConTasa(t *testing.T) {
	uc := NewUseCase(catalogo(), logger.Nop())
	out, err := uc.BuscarPrecios(context.Background(), "principal", "", dto.PageRequest{}, d("40"))
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	require.NotNil(t, out.Items[0].PrecioBs)
	assert.True(t, d("48").Equal(*out.Items[0].PrecioBs))
	assert.Equal(t, 2, out.Page.Total)
}

func TestBuscarPrecios_SinTasaNoHayBs(t *testing.T) {
	uc := NewUseCase(catalogo(), logger.Nop())
	out, err := uc.BuscarPrecios(context.Background(), "sucursal", "", dto.PageRequest{}, decimal.Zero)
	require.NoError(t, err)
	for _, it := range out.Items {
		assert.Nil(t, it.PrecioBs)
	}
}

func TestBuscarPrecios_TodosOrdenadoYPaginado(t *testing.T) {
	uc := NewUseCase(catalogo(), logger.Nop())
	out, err := uc.BuscarPrecios(context.Background(), "", "", dto.PageRequest{Limit: 2, Offset: 1}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Page.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "A01", out.Items[0].Codigo)
	assert.Equal(t, entity.OrigenSucursal, out.Items[0].Origen)
	assert.Equal(t, "B02", out.Items[1].Codigo)
}

func TestBuscarPrecios_UnPOSCaido(t *testing.T) {
	cat := catalogo()
	cat.caido[entity.OrigenSucursal] = true
	uc := NewUseCase(cat, logger.Nop())

	out, err := uc.BuscarPrecios(context.Background(), "todos", "", dto.PageRequest{}, decimal.Zero)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	cat.caido[entity.OrigenPrincipal] = true
	_, err = uc.BuscarPrecios(context.Background(), "todos", "", dto.PageRequest{}, decimal.Zero)
	assert.Error(t, err)
}

func TestBuscarPrecios_OrigenInvalido(t *testing.T) {
	uc := NewUseCase(catalogo(), logger.Nop())
	_, err := uc.BuscarPrecios(context.Background(), "deposito", "", dto.PageRequest{}, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuscarPrecios_TodosPaginaSinRepetirCodigosMixtos(t *testing.T) {
	prod := func(origen, codigo string) *entity.PrecioProducto {
		return &entity.PrecioProducto{Origen: origen, Codigo: codigo, Precio: d("1")}
	}
	tests := []struct {
		name      string
		principal []string
		want      []string
	}{
		{"orden binario", []string{"B1", "a1"}, []string{"B1", "a1", "c1"}},
		{"orden sin mayúsculas", []string{"a1", "B1"}, []string{"a1", "B1", "c1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &fakeCatalog{
				data: map[string][]*entity.PrecioProducto{
					entity.OrigenSucursal: {prod(entity.OrigenSucursal, "c1")},
				},
				caido: map[string]bool{},
			}
			for _, c := range tt.principal {
				cat.data[entity.OrigenPrincipal] = append(cat.data[entity.OrigenPrincipal], prod(entity.OrigenPrincipal, c))
			}
			uc := NewUseCase(cat, logger.Nop())

			var vistos []string
			for offset := 0; offset < 3; offset++ {
				out, err := uc.BuscarPrecios(context.Background(), "todos", "", dto.PageRequest{Limit: 1, Offset: offset}, decimal.Zero)
				require.NoError(t, err)
				require.Len(t, out.Items, 1)
				assert.Equal(t, 3, out.Page.Total)
				vistos = append(vistos, out.Items[0].Codigo)
			}
			assert.Equal(t, tt.want, vistos)
		})
	}
}

func TestMezclarPorCodigo_ConservaOrdenDeCadaOrigen(t *testing.T) {
	p := func(origen, codigo string) *entity.PrecioProducto {
		return &entity.PrecioProducto{Origen: origen, Codigo: codigo}
	}
	// Aunque un POS devuelva otro orden, ninguna fila se pierde ni se duplica.
	principal := []*entity.PrecioProducto{p(entity.OrigenPrincipal, "a1"), p(entity.OrigenPrincipal, "B1")}
	sucursal := []*entity.PrecioProducto{p(entity.OrigenSucursal, "c1")}

	got := mezclarPorCodigo(principal, sucursal)
	require.Len(t, got, 3)
	codigos := map[string]int{}
	for _, it := range got {
		codigos[it.Codigo]++
	}
	assert.Equal(t, map[string]int{"a1": 1, "B1": 1, "c1": 1}, codigos)
	assert.Equal(t, "a1", got[0].Codigo)
	assert.Equal(t, "B1", got[1].Codigo)
}
