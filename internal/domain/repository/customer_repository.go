package repository

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// CustomerRepository define el puerto de consulta de terceros para la
// detección de cliente durante la creación de pedidos.
type CustomerRepository interface {
	// GetByID devuelve (nil, nil) cuando el id no existe.
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// GetByEmail busca dentro de la entidad propietaria; (nil, nil) si no hay coincidencia.
	GetByEmail(ctx context.Context, tenantID, email string) (*entity.Customer, error)
}
