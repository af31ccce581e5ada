package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de ciclo de vida de un pedido.
// Este núcleo solo fija el estado inicial Draft al crear; las transiciones
// de negocio viven en el almacén de registros.
type OrderStatus int

const (
	OrderStatusCanceled  OrderStatus = -1
	OrderStatusDraft     OrderStatus = 0
	OrderStatusValidated OrderStatus = 1
)

// Order representa un pedido de venta sincronizado.
type Order struct {
	ID         string
	TenantID   string // entidad propietaria (multi-tenant); vacío en sondas de borrado
	CustomerID string
	Ref        string
	Date       time.Time // fecha principal del registro
	OrderDate  time.Time // fecha de pedido; se deriva de la misma entrada que Date
	Status     OrderStatus
	Lines      []OrderLine

	// ExtraFields campos extendidos/personalizados; se persisten en una segunda
	// fase independiente del update principal.
	ExtraFields map[string]any

	// DetectedCustomerID estado transitorio de la detección de cliente durante
	// una operación de sincronización; se limpia al cargar.
	DetectedCustomerID string
}

// OrderLine línea de detalle de un pedido.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Label     string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
