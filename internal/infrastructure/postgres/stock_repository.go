package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo adaptador de kardex: cada ajuste bloquea la fila de stock
// (SELECT FOR UPDATE), aplica el delta firmado y deja el rastro en
// stock_movements, todo dentro de una misma transacción.
type StockRepo struct {
	runner *TxRunner
}

// NewStockRepository construye el adaptador con el runner transaccional.
func NewStockRepository(runner *TxRunner) *StockRepo {
	return &StockRepo{runner: runner}
}

// AdjustStock aplica el movimiento. Devuelve código 1 si el almacén aceptó;
// una salida que dejaría el stock negativo se rechaza con ErrInsufficientStock.
func (r *StockRepo) AdjustStock(ctx context.Context, mov *entity.StockMovement) (int64, error) {
	signed := mov.Quantity
	if mov.Direction == entity.StockRemove {
		signed = -signed
	}

	err := r.runner.Run(ctx, func(tx pgx.Tx) error {
		// Bloquea la fila de stock para evitar condiciones de carrera
		var current int64
		err := tx.QueryRow(ctx,
			`SELECT quantity FROM stock WHERE product_id = $1 AND warehouse_id = $2 FOR UPDATE`,
			mov.ProductID, mov.WarehouseID,
		).Scan(&current)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("lock stock row: %w", err)
		}

		newQty := current + signed
		if newQty < 0 {
			return fmt.Errorf("producto %s en bodega %s: %w", mov.ProductID, mov.WarehouseID, domain.ErrInsufficientStock)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO stock (product_id, warehouse_id, quantity, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (product_id, warehouse_id)
			DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
			mov.ProductID, mov.WarehouseID, newQty,
		)
		if err != nil {
			return fmt.Errorf("upsert stock: %w", err)
		}

		// El nivel agregado del producto se mantiene junto al registro
		_, err = tx.Exec(ctx,
			`UPDATE products SET stock_on_hand = stock_on_hand + $2, updated_at = now() WHERE id = $1`,
			mov.ProductID, signed,
		)
		if err != nil {
			return fmt.Errorf("update product stock: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO stock_movements
				(transaction_id, product_id, warehouse_id, quantity, direction, unit_price, note, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			mov.TransactionID, mov.ProductID, mov.WarehouseID,
			signed, int(mov.Direction), mov.UnitPrice, mov.Note, mov.CreatedBy, mov.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert stock movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return 1, nil
}
