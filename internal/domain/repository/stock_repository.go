package repository

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// StockRepository define el puerto de kardex del almacén de registros.
type StockRepository interface {
	// AdjustStock aplica un delta firmado contra la bodega del movimiento y
	// deja el rastro en el kardex. Código no positivo = el almacén rechazó.
	AdjustStock(ctx context.Context, mov *entity.StockMovement) (int64, error)
}
