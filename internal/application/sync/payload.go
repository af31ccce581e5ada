package sync

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
)

// Payload mapeo plano campo → valor escalar intercambiado con el exterior.
// Se consume campo a campo: una clave escrita se elimina del payload, de modo
// que un campo nunca se escribe dos veces en una misma pasada aunque varios
// pipelines se encadenen sobre el mismo payload.
type Payload map[string]any

// Keys devuelve las claves en orden estable (alfabético).
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has indica si la clave sigue presente (no consumida).
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Consume elimina la clave ya escrita.
func (p Payload) Consume(key string) {
	delete(p, key)
}

// String devuelve el valor como texto canónico y si la clave existe.
func (p Payload) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	return AsString(v), true
}

// AsString convierte un escalar del payload a su texto canónico.
// Los float se formatean con la mínima representación exacta para que el
// dirty-check por cadena no dependa del origen del valor.
func AsString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case decimal.Decimal:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// AsInt convierte un escalar del payload a entero.
func AsInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("valor %q no es entero: %w", t, domain.ErrInvalidInput)
		}
		return n, nil
	case decimal.Decimal:
		return t.IntPart(), nil
	default:
		return 0, fmt.Errorf("tipo %T no convertible a entero: %w", v, domain.ErrInvalidInput)
	}
}

// AsDecimal convierte un escalar del payload a decimal exacto.
func AsDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, fmt.Errorf("valor %q no es numérico: %w", t, domain.ErrInvalidInput)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("tipo %T no convertible a decimal: %w", v, domain.ErrInvalidInput)
	}
}
