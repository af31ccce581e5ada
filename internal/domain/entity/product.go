package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"
)

// Product representa un producto del catálogo sincronizado.
// Las medidas se guardan como par (valor, escala) tal como las acepta el almacén;
// la conversión a la unidad canónica externa la hace el paquete measure.
type Product struct {
	ID       string
	TenantID string
	Ref      string // código único del producto
	Label    string
	Price    decimal.Decimal // precio de venta; referencia de valoración del kardex

	Weight  measure.Measurement
	Length  measure.Measurement
	Surface measure.Measurement
	Volume  measure.Measurement

	StockOnHand    int64           // stock real
	AlertThreshold int64           // umbral de alerta de stock
	DesiredStock   int64           // stock objetivo
	AveragePrice   decimal.Decimal // precio medio ponderado de compra (solo lectura)

	// Variantes: referencias débiles por id; el producto base y la combinación
	// se resuelven bajo demanda contra el almacén, nunca como punteros embebidos.
	IsVariant     bool
	BaseProductID string // vacío = sin producto base
	CombinationID string

	ExtraFields map[string]any
}

// Combination guarda los atributos propios de una variante respecto a su base.
type Combination struct {
	ID              string
	ProductID       string
	VariationWeight decimal.Decimal // peso de la variante - peso del producto base
}
