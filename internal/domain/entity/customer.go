package entity

import "time"

// Customer representa el tercero al que se asocia un pedido sincronizado.
type Customer struct {
	ID        string
	TenantID  string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
