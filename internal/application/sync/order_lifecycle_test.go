package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

func newOrderLifecycle(orders *fakeOrderRepo, customers *fakeCustomerRepo, gate sync.AccessGate) *sync.OrderLifecycle {
	if customers == nil {
		customers = newFakeCustomerRepo()
	}
	if gate == nil {
		gate = sync.NewTenantGate()
	}
	return sync.NewOrderLifecycle(orders, sync.NewCustomerDetector(customers), gate, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Load: sesión obligatoria, gate de tenant, limpieza del estado transitorio.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderLoad_SinSesion(t *testing.T) {
	orders := newFakeOrderRepo(&entity.Order{ID: "ord-1"})
	lc := newOrderLifecycle(orders, nil, nil)

	_, err := lc.Load(context.Background(), nil, "ord-1")
	assert.ErrorIs(t, err, domain.ErrMissingUser)

	_, err = lc.Load(context.Background(), &sync.Session{}, "ord-1")
	assert.ErrorIs(t, err, domain.ErrMissingUser, "una sesión sin login no es un actor válido")
}

func TestOrderLoad_NoEncontrado(t *testing.T) {
	lc := newOrderLifecycle(newFakeOrderRepo(), nil, nil)
	_, err := lc.Load(context.Background(), testSession(), "ord-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderLoad_GateDeTenantRechaza(t *testing.T) {
	orders := newFakeOrderRepo(&entity.Order{ID: "ord-1", TenantID: "t-ajeno"})
	lc := newOrderLifecycle(orders, nil, sync.NewTenantGate("t-1"))

	order, err := lc.Load(context.Background(), testSession(), "ord-1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Nil(t, order, "el registro nunca llega al caller si el gate lo rechaza")
}

func TestOrderLoad_CargaLineasYLimpiaDeteccion(t *testing.T) {
	stored := &entity.Order{ID: "ord-1", TenantID: "t-1", DetectedCustomerID: "residuo"}
	orders := newFakeOrderRepo(stored)
	lc := newOrderLifecycle(orders, nil, sync.NewTenantGate("t-1"))

	order, err := lc.Load(context.Background(), testSession(), "ord-1")
	require.NoError(t, err)
	assert.True(t, orders.fetchedLines, "las líneas se cargan junto con el pedido")
	assert.Empty(t, order.DetectedCustomerID, "el estado de detección se limpia al cargar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: la fecha es obligatoria y se verifica antes de tocar el almacén.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_SinFechaNoTocaElAlmacen(t *testing.T) {
	orders := newFakeOrderRepo()
	lc := newOrderLifecycle(orders, nil, nil)

	_, err := lc.Create(context.Background(), testSession(), sync.Payload{})
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Contains(t, err.Error(), "date")
	assert.Zero(t, orders.createCalls, "la validación de fecha precede a cualquier escritura")
}

func TestOrderCreate_SinSesion(t *testing.T) {
	orders := newFakeOrderRepo()
	lc := newOrderLifecycle(orders, nil, nil)

	_, err := lc.Create(context.Background(), nil, sync.Payload{"date": "2026-08-01"})
	assert.ErrorIs(t, err, domain.ErrMissingUser)
	assert.Zero(t, orders.createCalls)
}

func TestOrderCreate_FechaInvalida(t *testing.T) {
	orders := newFakeOrderRepo()
	lc := newOrderLifecycle(orders, nil, nil)

	_, err := lc.Create(context.Background(), testSession(), sync.Payload{"date": "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, orders.createCalls)
}

func TestOrderCreate_BorradorConAmbasFechas(t *testing.T) {
	orders := newFakeOrderRepo()
	lc := newOrderLifecycle(orders, nil, nil)

	order, err := lc.Create(context.Background(), testSession(), sync.Payload{"date": "2026-08-01"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, order.Status, "un pedido nuevo nace en borrador")
	assert.Equal(t, order.Date, order.OrderDate, "ambas fechas se derivan de la misma entrada")
	assert.Equal(t, "t-1", order.TenantID, "el pedido pertenece a la entidad de la sesión")
	assert.NotEmpty(t, order.ID)
}

func TestOrderCreate_DetectaClientePorID(t *testing.T) {
	customers := newFakeCustomerRepo(&entity.Customer{ID: "cus-1", TenantID: "t-1"})
	lc := newOrderLifecycle(newFakeOrderRepo(), customers, nil)

	order, err := lc.Create(context.Background(), testSession(),
		sync.Payload{"date": "2026-08-01", "customer": "cus-1"})
	require.NoError(t, err)
	assert.Equal(t, "cus-1", order.CustomerID)
	assert.Equal(t, "cus-1", order.DetectedCustomerID)
}

func TestOrderCreate_ClienteInexistenteFalla(t *testing.T) {
	lc := newOrderLifecycle(newFakeOrderRepo(), newFakeCustomerRepo(), nil)

	_, err := lc.Create(context.Background(), testSession(),
		sync.Payload{"date": "2026-08-01", "customer": "cus-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderCreate_DetectaClientePorEmail(t *testing.T) {
	customers := newFakeCustomerRepo(&entity.Customer{ID: "cus-2", TenantID: "t-1", Email: "ana@acme.test"})
	lc := newOrderLifecycle(newFakeOrderRepo(), customers, nil)

	order, err := lc.Create(context.Background(), testSession(),
		sync.Payload{"date": "2026-08-01", "email": "ana@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "cus-2", order.CustomerID)
}

func TestOrderCreate_EmailSinCoincidenciaNoEsError(t *testing.T) {
	lc := newOrderLifecycle(newFakeOrderRepo(), newFakeCustomerRepo(), nil)

	order, err := lc.Create(context.Background(), testSession(),
		sync.Payload{"date": "2026-08-01", "email": "nadie@acme.test"})
	require.NoError(t, err, "email sin coincidencia deja el pedido sin cliente")
	assert.Empty(t, order.CustomerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update en dos fases: principal autoritativo, extendidos no fatales.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUpdate_SinCambiosNoTocaElAlmacen(t *testing.T) {
	orders := newFakeOrderRepo()
	lc := newOrderLifecycle(orders, nil, nil)
	order := &entity.Order{ID: "ord-1"}

	res, err := lc.Update(context.Background(), testSession(), order, false)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", res.ID)
	assert.Zero(t, orders.updateCalls, "needed=false devuelve el id sin escribir nada")
	assert.Zero(t, orders.extraCalls)
}

func TestOrderUpdate_FalloDeExtendidosNoAborta(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.extraCode = -1
	lc := newOrderLifecycle(orders, nil, nil)
	order := &entity.Order{ID: "ord-1", ExtraFields: map[string]any{"custom": "v"}}

	res, err := lc.Update(context.Background(), testSession(), order, true)
	require.NoError(t, err, "el fallo de extendidos no es un error de la operación")
	assert.Equal(t, "ord-1", res.ID)
	require.Error(t, res.ExtraFieldsErr, "pero queda registrado como advertencia")
	assert.ErrorIs(t, res.ExtraFieldsErr, domain.ErrStoreWriteFailed)
}

func TestOrderUpdate_FalloDelPrincipalSiAborta(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.updateCode = -1
	lc := newOrderLifecycle(orders, nil, nil)

	_, err := lc.Update(context.Background(), testSession(), &entity.Order{ID: "ord-1"}, true)
	assert.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	assert.Zero(t, orders.extraCalls, "tras el fallo principal no se intentan los extendidos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete: la sonda sin discriminador pasa el gate aunque esté restringido.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderDelete_AgnosticoAlTenant(t *testing.T) {
	orders := newFakeOrderRepo(&entity.Order{ID: "ord-1", TenantID: "t-ajeno"})
	// El gate restringido rechazaría "t-ajeno" en load, pero el borrado usa la
	// sonda sin discriminador y pasa.
	lc := newOrderLifecycle(orders, nil, sync.NewTenantGate("t-1"))

	ok, err := lc.Delete(context.Background(), testSession(), "ord-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, orders.deleteCalls)
}

func TestOrderDelete_SinSesion(t *testing.T) {
	orders := newFakeOrderRepo(&entity.Order{ID: "ord-1"})
	lc := newOrderLifecycle(orders, nil, nil)

	_, err := lc.Delete(context.Background(), nil, "ord-1")
	assert.ErrorIs(t, err, domain.ErrMissingUser)
	assert.Zero(t, orders.deleteCalls)
}

func TestOrderDelete_RechazoDelAlmacen(t *testing.T) {
	orders := newFakeOrderRepo(&entity.Order{ID: "ord-1"})
	orders.deleteCode = 0
	lc := newOrderLifecycle(orders, nil, nil)

	ok, err := lc.Delete(context.Background(), testSession(), "ord-1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrStoreWriteFailed)
}
