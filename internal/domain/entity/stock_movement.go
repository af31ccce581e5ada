package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDirection sentido de un movimiento de kardex. Los códigos siguen la
// convención del almacén: 0 = entrada, 1 = salida.
type StockDirection int

const (
	StockAdd    StockDirection = 0
	StockRemove StockDirection = 1
)

// StockMovement delta firmado contra una bodega nombrada. Reemplaza la
// sobre-escritura directa del stock: el almacén aplica el delta en su kardex.
// Es un valor efímero: se crea y consume dentro de una misma escritura.
type StockMovement struct {
	TransactionID string
	WarehouseID   string
	ProductID     string
	Quantity      int64 // magnitud, siempre > 0
	Direction     StockDirection
	UnitPrice     decimal.Decimal // referencia de valoración (precio actual del producto)
	Note          string
	CreatedBy     string
	CreatedAt     time.Time
}
