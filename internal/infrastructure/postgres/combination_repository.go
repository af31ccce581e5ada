package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
)

var _ repository.CombinationRepository = (*CombinationRepo)(nil)

// CombinationRepo implementación de CombinationRepository sobre PostgreSQL.
type CombinationRepo struct {
	q Querier
}

// NewCombinationRepository construye el adaptador de combinaciones.
func NewCombinationRepository(q Querier) *CombinationRepo {
	return &CombinationRepo{q: q}
}

// Fetch obtiene una combinación por id; devuelve (nil, nil) si no existe.
func (r *CombinationRepo) Fetch(ctx context.Context, id string) (*entity.Combination, error) {
	query := `SELECT id, product_id, variation_weight FROM product_combinations WHERE id = $1`
	var c entity.Combination
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.ProductID, &c.VariationWeight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch combination: %w", err)
	}
	return &c, nil
}

// UpdateVariationWeight sobreescribe el delta de peso de la combinación.
func (r *CombinationRepo) UpdateVariationWeight(ctx context.Context, combinationID string, delta decimal.Decimal) (int64, error) {
	query := `UPDATE product_combinations SET variation_weight = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, combinationID, delta)
	if err != nil {
		return 0, fmt.Errorf("update variation weight: %w", err)
	}
	return tag.RowsAffected(), nil
}
