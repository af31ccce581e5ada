package sync

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
)

// CustomerDetector resuelve la referencia de cliente/tercero presente en el
// payload antes de construir un pedido: primero por id explícito ("customer"),
// luego por email dentro de la entidad de la sesión.
type CustomerDetector struct {
	customers repository.CustomerRepository
}

// NewCustomerDetector construye el detector.
func NewCustomerDetector(customers repository.CustomerRepository) *CustomerDetector {
	return &CustomerDetector{customers: customers}
}

// Detect devuelve el id de cliente detectado ("" si el payload no trae referencia).
func (d *CustomerDetector) Detect(ctx context.Context, ses *Session, in Payload) (string, error) {
	if raw, ok := in.String("customer"); ok && raw != "" {
		c, err := d.customers.GetByID(ctx, raw)
		if err != nil {
			return "", fmt.Errorf("detección de cliente %s: %w", raw, err)
		}
		if c == nil {
			return "", fmt.Errorf("cliente %s: %w", raw, domain.ErrNotFound)
		}
		return c.ID, nil
	}
	if email, ok := in.String("email"); ok && email != "" {
		c, err := d.customers.GetByEmail(ctx, ses.TenantID, email)
		if err != nil {
			return "", fmt.Errorf("detección de cliente por email: %w", err)
		}
		if c != nil {
			return c.ID, nil
		}
	}
	return "", nil
}
