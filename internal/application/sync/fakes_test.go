package sync_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos del almacén de registros. Cada fake cuenta
// las llamadas de escritura para poder afirmar "no tocó el almacén".
// ──────────────────────────────────────────────────────────────────────────────

func testSession() *sync.Session {
	return &sync.Session{UserID: "u-1", Login: "admin", TenantID: "t-1"}
}

type fakeOrderRepo struct {
	byID map[string]*entity.Order

	createCalls  int
	updateCalls  int
	extraCalls   int
	deleteCalls  int
	fetchedLines bool

	createCode int64
	updateCode int64
	extraCode  int64
	deleteCode int64

	createErr error
	updateErr error
	extraErr  error
	deleteErr error
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{
		byID:       make(map[string]*entity.Order),
		createCode: 1, updateCode: 1, extraCode: 1, deleteCode: 1,
	}
	for _, o := range orders {
		r.byID[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Fetch(_ context.Context, id string) (*entity.Order, error) {
	return r.byID[id], nil
}

func (r *fakeOrderRepo) FetchLines(_ context.Context, order *entity.Order) error {
	r.fetchedLines = true
	return nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order, _ string) (int64, error) {
	r.createCalls++
	if r.createErr != nil || r.createCode <= 0 {
		return r.createCode, r.createErr
	}
	order.ID = "ord-new"
	r.byID[order.ID] = order
	return r.createCode, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order, _ string) (int64, error) {
	r.updateCalls++
	return r.updateCode, r.updateErr
}

func (r *fakeOrderRepo) UpdateExtraFields(_ context.Context, order *entity.Order) (int64, error) {
	r.extraCalls++
	return r.extraCode, r.extraErr
}

func (r *fakeOrderRepo) Delete(_ context.Context, order *entity.Order, _ string) (int64, error) {
	r.deleteCalls++
	if r.deleteErr != nil || r.deleteCode <= 0 {
		return r.deleteCode, r.deleteErr
	}
	delete(r.byID, order.ID)
	return r.deleteCode, nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product

	createCalls      int
	updateCalls      int
	extraCalls       int
	deleteCalls      int
	weightScaleCalls int
	lastWeightScale  measure.Scale

	createCode      int64
	updateCode      int64
	extraCode       int64
	deleteCode      int64
	weightScaleCode int64

	updateErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		byID:       make(map[string]*entity.Product),
		createCode: 1, updateCode: 1, extraCode: 1, deleteCode: 1, weightScaleCode: 1,
	}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Fetch(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product, _ string) (int64, error) {
	r.createCalls++
	if r.createCode <= 0 {
		return r.createCode, nil
	}
	product.ID = "prd-new"
	r.byID[product.ID] = product
	return r.createCode, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product, _ string) (int64, error) {
	r.updateCalls++
	return r.updateCode, r.updateErr
}

func (r *fakeProductRepo) UpdateExtraFields(_ context.Context, product *entity.Product) (int64, error) {
	r.extraCalls++
	return r.extraCode, nil
}

func (r *fakeProductRepo) UpdateWeightScale(_ context.Context, productID string, scale measure.Scale) (int64, error) {
	r.weightScaleCalls++
	r.lastWeightScale = scale
	return r.weightScaleCode, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, product *entity.Product, _ string) (int64, error) {
	r.deleteCalls++
	if r.deleteCode <= 0 {
		return r.deleteCode, nil
	}
	delete(r.byID, product.ID)
	return r.deleteCode, nil
}

type fakeCombinationRepo struct {
	byID map[string]*entity.Combination

	variationCalls int
	lastDelta      decimal.Decimal
	variationCode  int64
}

func newFakeCombinationRepo(combinations ...*entity.Combination) *fakeCombinationRepo {
	r := &fakeCombinationRepo{byID: make(map[string]*entity.Combination), variationCode: 1}
	for _, c := range combinations {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCombinationRepo) Fetch(_ context.Context, id string) (*entity.Combination, error) {
	return r.byID[id], nil
}

func (r *fakeCombinationRepo) UpdateVariationWeight(_ context.Context, combinationID string, delta decimal.Decimal) (int64, error) {
	r.variationCalls++
	r.lastDelta = delta
	if c, ok := r.byID[combinationID]; ok {
		c.VariationWeight = delta
	}
	return r.variationCode, nil
}

type fakeCustomerRepo struct {
	byID    map[string]*entity.Customer
	byEmail map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{
		byID:    make(map[string]*entity.Customer),
		byEmail: make(map[string]*entity.Customer),
	}
	for _, c := range customers {
		r.byID[c.ID] = c
		r.byEmail[c.Email] = c
	}
	return r
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.byID[id], nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, tenantID, email string) (*entity.Customer, error) {
	c := r.byEmail[email]
	if c == nil || c.TenantID != tenantID {
		return nil, nil
	}
	return c, nil
}

type fakeStockRepo struct {
	calls     int
	last      *entity.StockMovement
	code      int64
	returnErr error
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{code: 1}
}

func (r *fakeStockRepo) AdjustStock(_ context.Context, mov *entity.StockMovement) (int64, error) {
	r.calls++
	r.last = mov
	return r.code, r.returnErr
}
