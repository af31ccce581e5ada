package measure

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
)

// Dimension identifica la magnitud física de una medida.
type Dimension int

const (
	Weight  Dimension = iota // canónica: kg
	Length                   // canónica: m
	Surface                  // canónica: m²
	Volume                   // canónica: m³
)

// Scale es el código de unidad que guarda el almacén: potencia de diez
// respecto a la unidad canónica de la dimensión (ej. peso: -3 = gramos).
type Scale int

// Measurement par (valor, escala) tal como lo guarda el almacén de registros.
// El valor canónico (en la unidad de referencia) es Value * 10^Scale.
type Measurement struct {
	Value decimal.Decimal
	Scale Scale
}

// Escalas aceptadas por dimensión, de mayor a menor. La primera cuyo umbral
// no supere la magnitud es la elegida al normalizar.
var scalesByDimension = map[Dimension][]Scale{
	Weight:  {3, 0, -3, -6},  // t, kg, g, mg
	Length:  {0, -1, -2, -3}, // m, dm, cm, mm
	Surface: {0, -2, -4, -6}, // m², dm², cm², mm²
	Volume:  {0, -3, -6, -9}, // m³, dm³, cm³, mm³
}

var symbolsByDimension = map[Dimension]map[Scale]string{
	Weight:  {3: "t", 0: "kg", -3: "g", -6: "mg"},
	Length:  {0: "m", -1: "dm", -2: "cm", -3: "mm"},
	Surface: {0: "m2", -2: "dm2", -4: "cm2", -6: "mm2"},
	Volume:  {0: "m3", -3: "dm3", -6: "cm3", -9: "mm3"},
}

var one = decimal.New(1, 0)

// Canonical devuelve el valor en la unidad canónica de la dimensión.
// El desplazamiento decimal es exacto: no hay pérdida por coma flotante.
func (m Measurement) Canonical() decimal.Decimal {
	return m.Value.Shift(int32(m.Scale))
}

// Display devuelve la representación canónica en texto. Es la función que
// alimenta el dirty-check: dos medidas iguales producen siempre la misma cadena.
func Display(m Measurement) string {
	return m.Canonical().String()
}

// Symbol devuelve el símbolo de unidad para una escala de la dimensión ("" si no existe).
func Symbol(dim Dimension, s Scale) string {
	return symbolsByDimension[dim][s]
}

// ScaleValid indica si el almacén acepta la escala para la dimensión.
func ScaleValid(dim Dimension, s Scale) bool {
	for _, accepted := range scalesByDimension[dim] {
		if accepted == s {
			return true
		}
	}
	return false
}

// Normalize convierte un valor canónico en texto al par (valor, escala) interno.
// Elige la escala más grande cuya unidad no exceda la magnitud (cero → escala 0),
// de modo que Display(Normalize(s)) reproduce exactamente s para cualquier s
// producido por Display.
func Normalize(dim Dimension, raw string) (Measurement, error) {
	scales, ok := scalesByDimension[dim]
	if !ok {
		return Measurement{}, fmt.Errorf("measure: dimensión desconocida %d: %w", dim, domain.ErrInvalidInput)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Measurement{}, fmt.Errorf("measure: valor %q no numérico: %w", raw, domain.ErrInvalidInput)
	}
	if d.IsNegative() {
		return Measurement{}, fmt.Errorf("measure: valor negativo %q: %w", raw, domain.ErrInvalidInput)
	}
	if d.IsZero() {
		return Measurement{Value: d, Scale: 0}, nil
	}
	chosen := scales[len(scales)-1]
	for _, s := range scales {
		if d.Shift(int32(-s)).Cmp(one) >= 0 {
			chosen = s
			break
		}
	}
	return Measurement{Value: d.Shift(int32(-chosen)), Scale: chosen}, nil
}

// MustNormalize es Normalize con panic; solo para valores constantes en tests y seeds.
func MustNormalize(dim Dimension, raw string) Measurement {
	m, err := Normalize(dim, raw)
	if err != nil {
		panic(err)
	}
	return m
}
