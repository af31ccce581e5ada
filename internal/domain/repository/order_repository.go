package repository

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// OrderRepository define el puerto del almacén de registros para Order.
// Las mutaciones devuelven un código de resultado: un valor no positivo
// significa que el almacén rechazó la escritura (aunque no haya error de red).
type OrderRepository interface {
	// Fetch devuelve (nil, nil) cuando el id no existe.
	Fetch(ctx context.Context, id string) (*entity.Order, error)
	// FetchLines carga las líneas de detalle sobre el pedido ya cargado.
	FetchLines(ctx context.Context, order *entity.Order) error
	Create(ctx context.Context, order *entity.Order, actor string) (int64, error)
	Update(ctx context.Context, order *entity.Order, actor string) (int64, error)
	// UpdateExtraFields persiste los campos extendidos; su fallo no debe
	// revertir el update principal (tolerancia a fallo parcial del caller).
	UpdateExtraFields(ctx context.Context, order *entity.Order) (int64, error)
	Delete(ctx context.Context, order *entity.Order, actor string) (int64, error)
}
