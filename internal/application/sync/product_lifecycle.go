package sync

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

// ProductLifecycle orquesta load/create/update/delete de productos. Mismo
// contrato que el ciclo de pedidos: sesión obligatoria en toda mutación,
// gate de tenant en load, sonda sin discriminador en delete.
type ProductLifecycle struct {
	products repository.ProductRepository
	gate     AccessGate
	log      *logger.Logger
}

// NewProductLifecycle construye el ciclo de vida de productos.
func NewProductLifecycle(products repository.ProductRepository, gate AccessGate, log *logger.Logger) *ProductLifecycle {
	return &ProductLifecycle{products: products, gate: gate, log: log}
}

// Load carga el producto verificando el acceso por tenant.
func (lc *ProductLifecycle) Load(ctx context.Context, ses *Session, id string) (*entity.Product, error) {
	if !ses.Authenticated() {
		return nil, fmt.Errorf("cargar producto %s: %w", id, domain.ErrMissingUser)
	}
	product, err := lc.products.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar producto %s: %w", id, err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	if !lc.gate.IsTenantAllowed(product.TenantID) {
		lc.log.Warn().Str("product_id", id).Str("tenant_id", product.TenantID).
			Msg("acceso a producto rechazado por el gate de tenant")
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrAccessDenied)
	}
	return product, nil
}

// Create instancia y persiste un producto nuevo. El código (ref) es obligatorio.
func (lc *ProductLifecycle) Create(ctx context.Context, ses *Session, in Payload) (*entity.Product, error) {
	ref, ok := in.String("ref")
	if !ok || ref == "" {
		return nil, fmt.Errorf("crear producto: %w", domain.MissingField("ref"))
	}
	if !ses.Authenticated() {
		return nil, fmt.Errorf("crear producto: %w", domain.ErrMissingUser)
	}

	product := &entity.Product{
		TenantID: ses.TenantID,
		Ref:      ref,
	}
	if label, ok := in.String("label"); ok {
		product.Label = label
	}
	in.Consume("ref")
	in.Consume("label")

	code, err := lc.products.Create(ctx, product, ses.Actor())
	if err != nil || code <= 0 {
		return nil, storeWriteError("crear producto", code, err)
	}
	lc.log.Info().Str("product_id", product.ID).Str("ref", ref).Msg("producto creado")
	return product, nil
}

// Update persiste el producto en dos fases, con la misma tolerancia a fallo
// parcial de campos extendidos que el ciclo de pedidos.
func (lc *ProductLifecycle) Update(ctx context.Context, ses *Session, product *entity.Product, needed bool) (*UpdateResult, error) {
	if !needed {
		return &UpdateResult{ID: product.ID}, nil
	}
	if !ses.Authenticated() {
		return nil, fmt.Errorf("actualizar producto %s: %w", product.ID, domain.ErrMissingUser)
	}
	code, err := lc.products.Update(ctx, product, ses.Actor())
	if err != nil || code <= 0 {
		return nil, storeWriteError("actualizar producto "+product.ID, code, err)
	}

	res := &UpdateResult{ID: product.ID}
	if code, err := lc.products.UpdateExtraFields(ctx, product); err != nil || code <= 0 {
		res.ExtraFieldsErr = storeWriteError("campos extendidos del producto "+product.ID, code, err)
		lc.log.Warn().Err(res.ExtraFieldsErr).Str("product_id", product.ID).
			Msg("fallo no fatal al persistir campos extendidos")
	}
	return res, nil
}

// Delete elimina por id con la sonda sin discriminador de tenant.
func (lc *ProductLifecycle) Delete(ctx context.Context, ses *Session, id string) (bool, error) {
	if !ses.Authenticated() {
		return false, fmt.Errorf("eliminar producto %s: %w", id, domain.ErrMissingUser)
	}
	probe := &entity.Product{ID: id}
	if !lc.gate.IsTenantAllowed(probe.TenantID) {
		return false, fmt.Errorf("producto %s: %w", id, domain.ErrAccessDenied)
	}
	code, err := lc.products.Delete(ctx, probe, ses.Actor())
	if err != nil || code <= 0 {
		return false, storeWriteError("eliminar producto "+id, code, err)
	}
	lc.log.Info().Str("product_id", id).Str("actor", ses.Actor()).Msg("producto eliminado")
	return true, nil
}
