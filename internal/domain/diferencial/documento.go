package diferencial

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// DocumentoInput campos editables de una factura o nota de crédito.
// AlicuotaIVA y PorcentajeRetencion en porcentaje (0–100); TasaCambio en Bs por USD.
type DocumentoInput struct {
	BaseImponible       decimal.Decimal
	MontoExento         decimal.Decimal
	AlicuotaIVA         decimal.Decimal
	PorcentajeRetencion decimal.Decimal
	TasaCambio          decimal.Decimal
}

// DocumentoDerivado campos calculados (solo lectura en el formulario).
type DocumentoDerivado struct {
	SubTotal     decimal.Decimal
	IVA          decimal.Decimal
	Total        decimal.Decimal
	RetencionIVA decimal.Decimal
	MontoUSD     decimal.Decimal
}

// RecalcularDocumento deriva subtotal, IVA, total, retención y monto USD.
// No falla nunca: con TasaCambio <= 0 el monto USD queda en cero.
func RecalcularDocumento(in DocumentoInput) DocumentoDerivado {
	subTotal := in.BaseImponible.Add(in.MontoExento)
	iva := in.BaseImponible.Mul(in.AlicuotaIVA).Div(cien)
	total := subTotal.Add(iva)
	retencion := iva.Mul(in.PorcentajeRetencion).Div(cien)

	montoUSD := decimal.Zero
	if in.TasaCambio.IsPositive() {
		montoUSD = total.Div(in.TasaCambio)
	}

	return DocumentoDerivado{
		SubTotal:     subTotal,
		IVA:          iva,
		Total:        total,
		RetencionIVA: retencion,
		MontoUSD:     montoUSD,
	}
}

// NuevoDocumentoInput construye la entrada a partir de valores sueltos (JSON de formulario,
// flags, celdas). Cada valor pasa por Coerce.
func NuevoDocumentoInput(base, exento, alicuota, retencion, tasa any) DocumentoInput {
	return DocumentoInput{
		BaseImponible:       Coerce(base),
		MontoExento:         Coerce(exento),
		AlicuotaIVA:         Coerce(alicuota),
		PorcentajeRetencion: Coerce(retencion),
		TasaCambio:          Coerce(tasa),
	}
}

// Coerce convierte un valor numérico arbitrario a decimal.
// nil, NaN, ±Inf, booleanos y cadenas no numéricas se toman como cero.
// Acepta coma decimal ("36,5") cuando la cadena no trae punto.
func Coerce(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case float32:
		return Coerce(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int8:
		return decimal.NewFromInt(int64(x))
	case int16:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0)
	case uint8:
		return decimal.NewFromInt(int64(x))
	case uint16:
		return decimal.NewFromInt(int64(x))
	case uint32:
		return decimal.NewFromInt(int64(x))
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
	case json.Number:
		return coerceString(string(x))
	case string:
		return coerceString(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return coerceString(*x)
	default:
		return decimal.Zero
	}
}

func coerceString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		if d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1)); err == nil {
			return d
		}
	}
	return decimal.Zero
}
