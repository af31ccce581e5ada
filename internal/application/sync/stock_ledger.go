package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

// StockLedger traduce un nivel absoluto de stock deseado en un delta firmado
// de kardex contra la bodega por defecto configurada. Nunca sobreescribe el
// stock directamente.
type StockLedger struct {
	warehouseID string
	note        string
	stocks      repository.StockRepository
	log         *logger.Logger
}

// NewStockLedger construye el adaptador. warehouseID vacío no es un error aquí:
// la precondición se verifica en cada Apply, porque es configuración del
// sistema y no un fallo recuperable por llamada.
func NewStockLedger(warehouseID, note string, stocks repository.StockRepository, log *logger.Logger) *StockLedger {
	return &StockLedger{warehouseID: warehouseID, note: note, stocks: stocks, log: log}
}

// Apply compara el stock actual del producto con el nivel deseado y somete el
// movimiento de kardex correspondiente. Igualdad = no-op.
func (a *StockLedger) Apply(ctx context.Context, ses *Session, product *entity.Product, desired int64) error {
	if desired == product.StockOnHand {
		return nil
	}
	if a.warehouseID == "" {
		return fmt.Errorf("producto %s: no hay bodega por defecto definida: %w",
			product.ID, domain.ErrConfigurationMissing)
	}

	delta := product.StockOnHand - desired
	direction := entity.StockAdd
	if delta > 0 {
		direction = entity.StockRemove
	}
	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}

	mov := &entity.StockMovement{
		TransactionID: uuid.New().String(),
		WarehouseID:   a.warehouseID,
		ProductID:     product.ID,
		Quantity:      quantity,
		Direction:     direction,
		UnitPrice:     product.Price,
		Note:          a.note,
		CreatedBy:     ses.Actor(),
		CreatedAt:     time.Now(),
	}

	code, err := a.stocks.AdjustStock(ctx, mov)
	if err != nil || code <= 0 {
		return storeWriteError("ajuste de stock del producto "+product.ID, code, err)
	}

	a.log.Debug().
		Str("product_id", product.ID).
		Str("warehouse_id", a.warehouseID).
		Int64("quantity", quantity).
		Int("direction", int(direction)).
		Msg("movimiento de kardex aplicado")
	return nil
}
