package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// CombinationRepository define el puerto para las combinaciones de variantes.
type CombinationRepository interface {
	// Fetch devuelve (nil, nil) cuando el id no existe.
	Fetch(ctx context.Context, id string) (*entity.Combination, error)
	// UpdateVariationWeight sobreescribe el delta de peso de la combinación.
	UpdateVariationWeight(ctx context.Context, combinationID string, delta decimal.Decimal) (int64, error)
}
