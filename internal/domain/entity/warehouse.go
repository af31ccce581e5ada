package entity

import "time"

// Warehouse representa una bodega destino de los ajustes de stock del sincronizador.
type Warehouse struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
