package repository

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de consulta de bodegas.
type WarehouseRepository interface {
	// GetByID devuelve (nil, nil) cuando el id no existe.
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
}
