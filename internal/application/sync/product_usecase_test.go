package sync_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
	"github.com/jhoicas/Sincronizador-api/internal/domain"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

func newProductUseCase(products *fakeProductRepo, stocks *fakeStockRepo) *sync.ProductSyncUseCase {
	if stocks == nil {
		stocks = newFakeStockRepo()
	}
	lifecycle := sync.NewProductLifecycle(products, sync.NewTenantGate(), logger.Nop())
	chain := sync.Chain{
		sync.NewMainFields(nil),
		sync.NewStockFields(sync.NewStockLedger("wh-1", "nota", stocks, logger.Nop())),
	}
	return sync.NewProductSyncUseCase(lifecycle, chain, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Set: escritura campo a campo con consumo de claves y persistencia condicional.
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSet_EscribeConsumeYPersiste(t *testing.T) {
	products := newFakeProductRepo(&entity.Product{ID: "prd-1", TenantID: "t-1"})
	uc := newProductUseCase(products, nil)

	in := sync.Payload{"weight": "2.5", "clave_ajena": "x"}
	res, err := uc.Set(context.Background(), testSession(), "prd-1", in)
	require.NoError(t, err)
	assert.Equal(t, "prd-1", res.ID)

	assert.False(t, in.Has("weight"), "la clave manejada se consume del payload")
	assert.True(t, in.Has("clave_ajena"), "la clave ajena se deja intacta, no es un error")
	assert.Equal(t, 1, products.updateCalls, "hubo un cambio efectivo: se persiste")
	assert.Equal(t, "2.5", measure.Display(products.byID["prd-1"].Weight))
}

func TestProductSet_SinCambiosNoPersiste(t *testing.T) {
	stored := &entity.Product{ID: "prd-1", Weight: measure.MustNormalize(measure.Weight, "2.5")}
	products := newFakeProductRepo(stored)
	uc := newProductUseCase(products, nil)

	res, err := uc.Set(context.Background(), testSession(), "prd-1", sync.Payload{"weight": "2.5"})
	require.NoError(t, err)
	assert.Equal(t, "prd-1", res.ID)
	assert.Zero(t, products.updateCalls, "escribir los valores actuales no toca el almacén")
}

func TestProductSet_IDVacioCrea(t *testing.T) {
	products := newFakeProductRepo()
	uc := newProductUseCase(products, nil)

	in := sync.Payload{"ref": "SKU-001", "label": "Caja grande", "weight": "1.2"}
	res, err := uc.Set(context.Background(), testSession(), "", in)
	require.NoError(t, err)
	require.Equal(t, 1, products.createCalls)

	created := products.byID[res.ID]
	require.NotNil(t, created)
	assert.Equal(t, "SKU-001", created.Ref)
	assert.Equal(t, "Caja grande", created.Label)
	assert.Equal(t, "1.2", measure.Display(created.Weight))
	assert.Equal(t, 1, products.updateCalls, "un producto recién creado se persiste completo")
}

func TestProductSet_CrearSinRefFalla(t *testing.T) {
	products := newFakeProductRepo()
	uc := newProductUseCase(products, nil)

	_, err := uc.Set(context.Background(), testSession(), "", sync.Payload{"label": "sin código"})
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Zero(t, products.createCalls)
}

func TestProductSet_StockPasaPorElKardex(t *testing.T) {
	stored := &entity.Product{ID: "prd-1", StockOnHand: 50}
	products := newFakeProductRepo(stored)
	stocks := newFakeStockRepo()
	uc := newProductUseCase(products, stocks)

	_, err := uc.Set(context.Background(), testSession(), "prd-1", sync.Payload{"stock_reel": 30})
	require.NoError(t, err)
	require.Equal(t, 1, stocks.calls)
	assert.Equal(t, entity.StockRemove, stocks.last.Direction)
	assert.Equal(t, int64(20), stocks.last.Quantity)
	assert.Zero(t, products.updateCalls, "el stock no ensucia el snapshot del producto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Get: lectura selectiva o de todo el vocabulario declarado.
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGet_CamposSeleccionados(t *testing.T) {
	stored := &entity.Product{
		ID:          "prd-1",
		Weight:      measure.MustNormalize(measure.Weight, "2.5"),
		StockOnHand: 40,
	}
	uc := newProductUseCase(newFakeProductRepo(stored), nil)

	out, err := uc.Get(context.Background(), testSession(), "prd-1", []string{"weight", "stock_reel"})
	require.NoError(t, err)
	assert.Equal(t, 2.5, out["weight"])
	assert.Equal(t, int64(40), out["stock_reel"])
	assert.Len(t, out, 2)
}

func TestProductGet_SinFiltroLeeTodo(t *testing.T) {
	uc := newProductUseCase(newFakeProductRepo(&entity.Product{ID: "prd-1"}), nil)

	out, err := uc.Get(context.Background(), testSession(), "prd-1", nil)
	require.NoError(t, err)
	assert.Len(t, out, len(uc.Fields()), "sin filtro se leen todos los campos declarados")
}

func TestProductGet_NoEncontrado(t *testing.T) {
	uc := newProductUseCase(newFakeProductRepo(), nil)
	_, err := uc.Get(context.Background(), testSession(), "prd-x", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida directo: gate en load, sonda agnóstica en delete.
// ──────────────────────────────────────────────────────────────────────────────

func TestProductLifecycle_GateYDelete(t *testing.T) {
	stored := &entity.Product{ID: "prd-1", TenantID: "t-ajeno"}
	products := newFakeProductRepo(stored)
	lifecycle := sync.NewProductLifecycle(products, sync.NewTenantGate("t-1"), logger.Nop())

	_, err := lifecycle.Load(context.Background(), testSession(), "prd-1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	ok, err := lifecycle.Delete(context.Background(), testSession(), "prd-1")
	require.NoError(t, err, "el borrado es agnóstico al tenant")
	assert.True(t, ok)
}

func TestProductUpdate_FalloDeExtendidosNoAborta(t *testing.T) {
	products := newFakeProductRepo()
	products.extraCode = -1
	lifecycle := sync.NewProductLifecycle(products, sync.NewTenantGate(), logger.Nop())

	res, err := lifecycle.Update(context.Background(), testSession(),
		&entity.Product{ID: "prd-1", ExtraFields: map[string]any{"c": 1}}, true)
	require.NoError(t, err)
	assert.ErrorIs(t, res.ExtraFieldsErr, domain.ErrStoreWriteFailed)
}
