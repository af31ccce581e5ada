package repository

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"
)

// ProductRepository define el puerto del almacén de registros para Product.
// Misma convención de códigos de resultado que OrderRepository.
type ProductRepository interface {
	// Fetch devuelve (nil, nil) cuando el id no existe; sirve también para
	// resolver la referencia débil variante → producto base.
	Fetch(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product, actor string) (int64, error)
	Update(ctx context.Context, product *entity.Product, actor string) (int64, error)
	UpdateExtraFields(ctx context.Context, product *entity.Product) (int64, error)
	// UpdateWeightScale propaga la unidad de peso al producto base de una variante.
	UpdateWeightScale(ctx context.Context, productID string, scale measure.Scale) (int64, error)
	Delete(ctx context.Context, product *entity.Product, actor string) (int64, error)
}
