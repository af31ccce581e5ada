package sync

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/pkg/logger"
)

// ProductSyncUseCase superficie de objeto sincronizable para productos:
// descripción de campos, lectura campo a campo hacia el payload y escritura
// campo a campo desde el payload, con consumo de claves y dirty-check.
type ProductSyncUseCase struct {
	lifecycle *ProductLifecycle
	pipelines Chain
	log       *logger.Logger
}

// NewProductSyncUseCase construye el caso de uso con los pipelines encadenados.
func NewProductSyncUseCase(lifecycle *ProductLifecycle, pipelines Chain, log *logger.Logger) *ProductSyncUseCase {
	return &ProductSyncUseCase{lifecycle: lifecycle, pipelines: pipelines, log: log}
}

// Fields declara los campos soportados por todos los pipelines encadenados.
func (uc *ProductSyncUseCase) Fields() []FieldDescriptor {
	return uc.pipelines.Describe()
}

// Get carga el producto y lee los campos pedidos hacia un payload de salida.
// fieldIDs vacío = todos los campos declarados.
func (uc *ProductSyncUseCase) Get(ctx context.Context, ses *Session, id string, fieldIDs []string) (Payload, error) {
	product, err := uc.lifecycle.Load(ctx, ses, id)
	if err != nil {
		return nil, err
	}
	if len(fieldIDs) == 0 {
		for _, d := range uc.pipelines.Describe() {
			fieldIDs = append(fieldIDs, d.ID)
		}
	}
	out := Payload{}
	for _, fieldID := range fieldIDs {
		if v, ok := uc.pipelines.Read(product, fieldID); ok {
			out[fieldID] = v
		}
	}
	return out, nil
}

// Set escribe el payload sobre el producto (id vacío = crear primero) y
// persiste solo si algún campo cambió de verdad. Las claves que ningún
// pipeline maneja se dejan en el payload: no son un error.
func (uc *ProductSyncUseCase) Set(ctx context.Context, ses *Session, id string, in Payload) (*UpdateResult, error) {
	var product *entity.Product
	var err error
	created := false
	if id == "" {
		product, err = uc.lifecycle.Create(ctx, ses, in)
		created = true
	} else {
		product, err = uc.lifecycle.Load(ctx, ses, id)
	}
	if err != nil {
		return nil, err
	}

	needed := created // un producto recién creado siempre se persiste completo
	for _, key := range in.Keys() {
		res, err := uc.pipelines.Write(ctx, ses, product, key, in[key])
		if err != nil {
			return nil, err
		}
		if !res.Handled {
			continue
		}
		if res.Changed {
			needed = true
		}
		in.Consume(key)
	}
	return uc.lifecycle.Update(ctx, ses, product, needed)
}

// Delete delega en el ciclo de vida.
func (uc *ProductSyncUseCase) Delete(ctx context.Context, ses *Session, id string) (bool, error) {
	return uc.lifecycle.Delete(ctx, ses, id)
}
