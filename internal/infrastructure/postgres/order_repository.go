package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Fetch obtiene un pedido por id; devuelve (nil, nil) si no existe.
func (r *OrderRepo) Fetch(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, tenant_id, COALESCE(customer_id, ''), COALESCE(ref, ''),
		       date, order_date, status, COALESCE(extra, '{}'::jsonb)
		FROM orders WHERE id = $1`
	var o entity.Order
	var status int
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.TenantID, &o.CustomerID, &o.Ref,
		&o.Date, &o.OrderDate, &status, &o.ExtraFields,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// FetchLines carga las líneas de detalle sobre el pedido ya cargado.
func (r *OrderRepo) FetchLines(ctx context.Context, order *entity.Order) error {
	query := `
		SELECT id, order_id, COALESCE(product_id, ''), COALESCE(label, ''), quantity, unit_price
		FROM order_lines WHERE order_id = $1
		ORDER BY position, id`
	rows, err := r.q.Query(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("fetch order lines: %w", err)
	}
	defer rows.Close()

	order.Lines = order.Lines[:0]
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Label, &l.Quantity, &l.UnitPrice); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		order.Lines = append(order.Lines, l)
	}
	return rows.Err()
}

// Create inserta el pedido y devuelve código 1 con el id asignado en la entidad.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order, actor string) (int64, error) {
	query := `
		INSERT INTO orders (tenant_id, customer_id, ref, date, order_date, status, extra, created_by, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, COALESCE($7, '{}'::jsonb), $8, now(), now())
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.TenantID, order.CustomerID, order.Ref,
		order.Date, order.OrderDate, int(order.Status), order.ExtraFields, actor,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("ref de pedido duplicada: %w", err)
		}
		return 0, fmt.Errorf("create order: %w", err)
	}
	return 1, nil
}

// Update persiste los campos principales; el código es la cantidad de filas afectadas.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order, actor string) (int64, error) {
	query := `
		UPDATE orders
		SET customer_id = NULLIF($2, ''), ref = NULLIF($3, ''), date = $4,
		    order_date = $5, status = $6, updated_by = $7, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		order.ID, order.CustomerID, order.Ref, order.Date,
		order.OrderDate, int(order.Status), actor,
	)
	if err != nil {
		return 0, fmt.Errorf("update order: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateExtraFields persiste los campos extendidos como paso independiente.
func (r *OrderRepo) UpdateExtraFields(ctx context.Context, order *entity.Order) (int64, error) {
	query := `UPDATE orders SET extra = COALESCE($2, '{}'::jsonb), updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, order.ID, order.ExtraFields)
	if err != nil {
		return 0, fmt.Errorf("update order extra fields: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina el pedido y sus líneas; el código es la cantidad de filas afectadas.
func (r *OrderRepo) Delete(ctx context.Context, order *entity.Order, actor string) (int64, error) {
	if _, err := r.q.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, order.ID); err != nil {
		return 0, fmt.Errorf("delete order lines: %w", err)
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, order.ID)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected(), nil
}
