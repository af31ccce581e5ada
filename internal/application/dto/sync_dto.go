package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Sincronizador-api/internal/application/sync"
	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// FieldResponse descriptor de campo expuesto por la API.
type FieldResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemType    string `json:"itemtype,omitempty"`
	ItemProp    string `json:"itemprop,omitempty"`
	Listed      bool   `json:"listed"`
	ReadOnly    bool   `json:"read_only"`
	Required    bool   `json:"required"`
}

// NewFieldResponses convierte los descriptores de los pipelines.
func NewFieldResponses(fields []sync.FieldDescriptor) []FieldResponse {
	out := make([]FieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldResponse{
			ID:          f.ID,
			Type:        string(f.Type),
			Name:        f.Name,
			Description: f.Description,
			ItemType:    f.MicroData.ItemType,
			ItemProp:    f.MicroData.Property,
			Listed:      f.Listed,
			ReadOnly:    f.ReadOnly,
			Required:    f.Required,
		})
	}
	return out
}

// OrderLineResponse línea de pedido en respuestas.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Label     string          `json:"label"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID         string              `json:"id"`
	Ref        string              `json:"ref,omitempty"`
	CustomerID string              `json:"customer_id,omitempty"`
	Date       time.Time           `json:"date"`
	OrderDate  time.Time           `json:"order_date"`
	Status     int                 `json:"status"`
	Lines      []OrderLineResponse `json:"lines"`
	Extra      map[string]any      `json:"extra,omitempty"`
}

// NewOrderResponse convierte la entidad.
func NewOrderResponse(o *entity.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Label:     l.Label,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return OrderResponse{
		ID:         o.ID,
		Ref:        o.Ref,
		CustomerID: o.CustomerID,
		Date:       o.Date,
		OrderDate:  o.OrderDate,
		Status:     int(o.Status),
		Lines:      lines,
		Extra:      o.ExtraFields,
	}
}

// UpdateResponse resultado de un update en dos fases. Warning transporta el
// fallo no fatal de campos extendidos cuando lo hubo.
type UpdateResponse struct {
	ID      string `json:"id"`
	Warning string `json:"warning,omitempty"`
}

// NewUpdateResponse convierte el resultado del caso de uso.
func NewUpdateResponse(res *sync.UpdateResult) UpdateResponse {
	out := UpdateResponse{ID: res.ID}
	if res.ExtraFieldsErr != nil {
		out.Warning = res.ExtraFieldsErr.Error()
	}
	return out
}
