package sync

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

// OrderSyncUseCase superficie de objeto sincronizable para pedidos. Los
// pedidos no tienen pipelines de campos en este núcleo: el ciclo de vida
// maneja la fecha obligatoria, la detección de cliente y los campos extendidos.
type OrderSyncUseCase struct {
	lifecycle *OrderLifecycle
	log       *logger.Logger
}

// NewOrderSyncUseCase construye el caso de uso.
func NewOrderSyncUseCase(lifecycle *OrderLifecycle, log *logger.Logger) *OrderSyncUseCase {
	return &OrderSyncUseCase{lifecycle: lifecycle, log: log}
}

// Get carga el pedido con sus líneas.
func (uc *OrderSyncUseCase) Get(ctx context.Context, ses *Session, id string) (*entity.Order, error) {
	return uc.lifecycle.Load(ctx, ses, id)
}

// Create crea el pedido desde el payload externo.
func (uc *OrderSyncUseCase) Create(ctx context.Context, ses *Session, in Payload) (*entity.Order, error) {
	return uc.lifecycle.Create(ctx, ses, in)
}

// Update carga el pedido, aplica los campos extendidos entrantes y persiste.
// needed se deriva de si el payload trajo algo que aplicar.
func (uc *OrderSyncUseCase) Update(ctx context.Context, ses *Session, id string, extra map[string]any) (*UpdateResult, error) {
	order, err := uc.lifecycle.Load(ctx, ses, id)
	if err != nil {
		return nil, err
	}
	needed := false
	if len(extra) > 0 {
		if order.ExtraFields == nil {
			order.ExtraFields = make(map[string]any, len(extra))
		}
		for k, v := range extra {
			if current, ok := order.ExtraFields[k]; ok && AsString(current) == AsString(v) {
				continue
			}
			order.ExtraFields[k] = v
			needed = true
		}
	}
	return uc.lifecycle.Update(ctx, ses, order, needed)
}

// Delete delega en el ciclo de vida.
func (uc *OrderSyncUseCase) Delete(ctx context.Context, ses *Session, id string) (bool, error) {
	return uc.lifecycle.Delete(ctx, ses, id)
}
