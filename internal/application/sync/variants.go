package sync

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

// VariantPropagator mantiene consistente la relación variante ↔ producto base
// tras un cambio efectivo de peso: propaga la nueva unidad al producto base y
// recalcula el delta de peso guardado en la combinación.
type VariantPropagator struct {
	products     repository.ProductRepository
	combinations repository.CombinationRepository
	log          *logger.Logger
}

// NewVariantPropagator construye el propagador.
func NewVariantPropagator(products repository.ProductRepository, combinations repository.CombinationRepository, log *logger.Logger) *VariantPropagator {
	return &VariantPropagator{products: products, combinations: combinations, log: log}
}

// PropagateWeight se invoca solo cuando la escritura de peso cambió el valor
// canónico. Producto no variante o sin referencia a base: nada que propagar
// (omisión silenciosa, no es un error).
func (vp *VariantPropagator) PropagateWeight(ctx context.Context, product *entity.Product, normalized measure.Measurement) error {
	if !product.IsVariant || product.BaseProductID == "" {
		return nil
	}
	base, err := vp.products.Fetch(ctx, product.BaseProductID)
	if err != nil {
		return err
	}
	if base == nil {
		// Referencia débil rota: se trata como "nada que propagar".
		vp.log.Debug().
			Str("product_id", product.ID).
			Str("base_product_id", product.BaseProductID).
			Msg("producto base inexistente, propagación omitida")
		return nil
	}

	// La unidad nueva manda: el producto base pasa a guardar su peso en ella.
	code, err := vp.products.UpdateWeightScale(ctx, base.ID, normalized.Scale)
	if err != nil || code <= 0 {
		return storeWriteError("unidad de peso del producto base "+base.ID, code, err)
	}

	if product.CombinationID == "" {
		return nil
	}
	delta := normalized.Value.Sub(base.Weight.Value)
	code, err = vp.combinations.UpdateVariationWeight(ctx, product.CombinationID, delta)
	if err != nil || code <= 0 {
		return storeWriteError("peso de variación de la combinación "+product.CombinationID, code, err)
	}
	return nil
}
