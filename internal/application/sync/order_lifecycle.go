package sync

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/repository"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

// OrderLifecycle orquesta load/create/update/delete de pedidos contra el
// almacén de registros. Es el único componente que toca el almacén durante
// una operación; el resto trabaja sobre el snapshot en memoria.
type OrderLifecycle struct {
	orders   repository.OrderRepository
	detector *CustomerDetector
	gate     AccessGate
	log      *logger.Logger
}

// NewOrderLifecycle construye el ciclo de vida de pedidos.
func NewOrderLifecycle(orders repository.OrderRepository, detector *CustomerDetector, gate AccessGate, log *logger.Logger) *OrderLifecycle {
	return &OrderLifecycle{orders: orders, detector: detector, gate: gate, log: log}
}

// Load carga el pedido con sus líneas y limpia el estado de detección de cliente.
// El registro nunca llega al caller si el gate de tenant lo rechaza.
func (lc *OrderLifecycle) Load(ctx context.Context, ses *Session, id string) (*entity.Order, error) {
	if !ses.Authenticated() {
		return nil, fmt.Errorf("cargar pedido %s: %w", id, domain.ErrMissingUser)
	}
	order, err := lc.orders.Fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cargar pedido %s: %w", id, err)
	}
	if order == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	if !lc.gate.IsTenantAllowed(order.TenantID) {
		lc.log.Warn().Str("order_id", id).Str("tenant_id", order.TenantID).
			Msg("acceso a pedido rechazado por el gate de tenant")
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrAccessDenied)
	}
	if err := lc.orders.FetchLines(ctx, order); err != nil {
		return nil, fmt.Errorf("líneas del pedido %s: %w", id, err)
	}
	order.DetectedCustomerID = ""
	return order, nil
}

// Create instancia y persiste un pedido nuevo en estado borrador. La fecha es
// obligatoria y se verifica antes de tocar el almacén; de la misma entrada se
// derivan la fecha principal y la fecha de pedido.
func (lc *OrderLifecycle) Create(ctx context.Context, ses *Session, in Payload) (*entity.Order, error) {
	raw, ok := in.String("date")
	if !ok || raw == "" {
		return nil, fmt.Errorf("crear pedido: %w", domain.MissingField("date"))
	}
	if !ses.Authenticated() {
		return nil, fmt.Errorf("crear pedido: %w", domain.ErrMissingUser)
	}
	ts, err := parseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}

	order := &entity.Order{
		TenantID:  ses.TenantID,
		Date:      ts,
		OrderDate: ts,
		Status:    entity.OrderStatusDraft,
	}
	customerID, err := lc.detector.Detect(ctx, ses, in)
	if err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}
	order.CustomerID = customerID
	order.DetectedCustomerID = customerID

	code, err := lc.orders.Create(ctx, order, ses.Actor())
	if err != nil || code <= 0 {
		return nil, storeWriteError("crear pedido", code, err)
	}
	lc.log.Info().Str("order_id", order.ID).Str("actor", ses.Actor()).Msg("pedido creado")
	return order, nil
}

// Update persiste el pedido en dos fases: los campos principales son
// autoritativos; el fallo de los campos extendidos se registra como
// advertencia en el resultado y no aborta la operación.
// needed=false devuelve el id actual sin tocar el almacén (el caller ya
// determinó que ningún campo cambió).
func (lc *OrderLifecycle) Update(ctx context.Context, ses *Session, order *entity.Order, needed bool) (*UpdateResult, error) {
	if !needed {
		return &UpdateResult{ID: order.ID}, nil
	}
	if !ses.Authenticated() {
		return nil, fmt.Errorf("actualizar pedido %s: %w", order.ID, domain.ErrMissingUser)
	}
	code, err := lc.orders.Update(ctx, order, ses.Actor())
	if err != nil || code <= 0 {
		return nil, storeWriteError("actualizar pedido "+order.ID, code, err)
	}

	res := &UpdateResult{ID: order.ID}
	if code, err := lc.orders.UpdateExtraFields(ctx, order); err != nil || code <= 0 {
		res.ExtraFieldsErr = storeWriteError("campos extendidos del pedido "+order.ID, code, err)
		lc.log.Warn().Err(res.ExtraFieldsErr).Str("order_id", order.ID).
			Msg("fallo no fatal al persistir campos extendidos")
	}
	return res, nil
}

// Delete elimina por id sin cargar el registro completo. La sonda se construye
// sin discriminador de tenant antes del chequeo de acceso: para borrado el
// control es deliberadamente agnóstico al tenant.
func (lc *OrderLifecycle) Delete(ctx context.Context, ses *Session, id string) (bool, error) {
	if !ses.Authenticated() {
		return false, fmt.Errorf("eliminar pedido %s: %w", id, domain.ErrMissingUser)
	}
	probe := &entity.Order{ID: id}
	if !lc.gate.IsTenantAllowed(probe.TenantID) {
		return false, fmt.Errorf("pedido %s: %w", id, domain.ErrAccessDenied)
	}
	code, err := lc.orders.Delete(ctx, probe, ses.Actor())
	if err != nil || code <= 0 {
		return false, storeWriteError("eliminar pedido "+id, code, err)
	}
	lc.log.Info().Str("order_id", id).Str("actor", ses.Actor()).Msg("pedido eliminado")
	return true, nil
}
