package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL.
// Las medidas se guardan como par (valor NUMERIC, escala SMALLINT) por dimensión.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Fetch obtiene un producto por id; devuelve (nil, nil) si no existe.
func (r *ProductRepo) Fetch(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, tenant_id, ref, COALESCE(label, ''), price,
		       weight, weight_scale, length, length_scale,
		       surface, surface_scale, volume, volume_scale,
		       stock_on_hand, alert_threshold, desired_stock, average_price,
		       is_variant, COALESCE(base_product_id, ''), COALESCE(combination_id, ''),
		       COALESCE(extra, '{}'::jsonb)
		FROM products WHERE id = $1`
	var p entity.Product
	var wScale, lScale, sScale, vScale int
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.TenantID, &p.Ref, &p.Label, &p.Price,
		&p.Weight.Value, &wScale, &p.Length.Value, &lScale,
		&p.Surface.Value, &sScale, &p.Volume.Value, &vScale,
		&p.StockOnHand, &p.AlertThreshold, &p.DesiredStock, &p.AveragePrice,
		&p.IsVariant, &p.BaseProductID, &p.CombinationID,
		&p.ExtraFields,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	p.Weight.Scale = measure.Scale(wScale)
	p.Length.Scale = measure.Scale(lScale)
	p.Surface.Scale = measure.Scale(sScale)
	p.Volume.Scale = measure.Scale(vScale)
	return &p, nil
}

// Create inserta el producto y devuelve código 1 con el id asignado en la entidad.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product, actor string) (int64, error) {
	query := `
		INSERT INTO products (
			tenant_id, ref, label, price,
			weight, weight_scale, length, length_scale,
			surface, surface_scale, volume, volume_scale,
			stock_on_hand, alert_threshold, desired_stock, average_price,
			is_variant, base_product_id, combination_id, extra,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, NULLIF($3, ''), $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, NULLIF($18, ''), NULLIF($19, ''), COALESCE($20, '{}'::jsonb),
			$21, now(), now()
		) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.TenantID, p.Ref, p.Label, p.Price,
		p.Weight.Value, int(p.Weight.Scale), p.Length.Value, int(p.Length.Scale),
		p.Surface.Value, int(p.Surface.Scale), p.Volume.Value, int(p.Volume.Scale),
		p.StockOnHand, p.AlertThreshold, p.DesiredStock, p.AveragePrice,
		p.IsVariant, p.BaseProductID, p.CombinationID, p.ExtraFields,
		actor,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("ref de producto duplicada: %w", err)
		}
		return 0, fmt.Errorf("create product: %w", err)
	}
	return 1, nil
}

// Update persiste los campos principales; el código es la cantidad de filas afectadas.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product, actor string) (int64, error) {
	query := `
		UPDATE products SET
			ref = $2, label = NULLIF($3, ''), price = $4,
			weight = $5, weight_scale = $6, length = $7, length_scale = $8,
			surface = $9, surface_scale = $10, volume = $11, volume_scale = $12,
			alert_threshold = $13, desired_stock = $14, average_price = $15,
			updated_by = $16, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Ref, p.Label, p.Price,
		p.Weight.Value, int(p.Weight.Scale), p.Length.Value, int(p.Length.Scale),
		p.Surface.Value, int(p.Surface.Scale), p.Volume.Value, int(p.Volume.Scale),
		p.AlertThreshold, p.DesiredStock, p.AveragePrice,
		actor,
	)
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateExtraFields persiste los campos extendidos como paso independiente.
func (r *ProductRepo) UpdateExtraFields(ctx context.Context, p *entity.Product) (int64, error) {
	query := `UPDATE products SET extra = COALESCE($2, '{}'::jsonb), updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.ExtraFields)
	if err != nil {
		return 0, fmt.Errorf("update product extra fields: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateWeightScale propaga la unidad de peso (solo la escala) a un producto.
func (r *ProductRepo) UpdateWeightScale(ctx context.Context, productID string, scale measure.Scale) (int64, error) {
	query := `UPDATE products SET weight_scale = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, productID, int(scale))
	if err != nil {
		return 0, fmt.Errorf("update product weight scale: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina el producto; el código es la cantidad de filas afectadas.
func (r *ProductRepo) Delete(ctx context.Context, p *entity.Product, actor string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, p.ID)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected(), nil
}
