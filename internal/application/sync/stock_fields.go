package sync

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// StockFields pipeline de campos de inventario del producto. El stock real no
// se escribe nunca directamente: la escritura pasa por el adaptador de kardex,
// que somete un delta firmado contra la bodega configurada.
type StockFields struct {
	*fieldTable
}

// NewStockFields construye el pipeline con el adaptador de kardex.
func NewStockFields(ledger *StockLedger) *StockFields {
	s := &StockFields{}
	s.fieldTable = newFieldTable([]fieldHandler{
		{
			desc: FieldDescriptor{
				ID:        "stock_reel",
				Type:      FieldInt,
				Name:      "Stock real",
				MicroData: MicroData{ItemType: "http://schema.org/Offer", Property: "inventoryLevel"},
				Listed:    true,
			},
			read: func(p *entity.Product) any { return p.StockOnHand },
			write: func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
				desired, err := AsInt(value)
				if err != nil {
					return false, err
				}
				// El kardex es el efecto; el snapshot del producto no se marca
				// sucio: el nivel lo recalcula el almacén al aplicar el delta.
				return false, ledger.Apply(ctx, ses, p, desired)
			},
		},
		{
			desc: FieldDescriptor{
				ID:        "seuil_stock_alerte",
				Type:      FieldInt,
				Name:      "Umbral de alerta de stock",
				MicroData: MicroData{ItemType: "http://schema.org/Offer", Property: "inventoryAlertLevel"},
			},
			read:  func(p *entity.Product) any { return p.AlertThreshold },
			write: intWrite(func(p *entity.Product) *int64 { return &p.AlertThreshold }),
		},
		{
			desc: FieldDescriptor{
				ID:        "stock_alert_flag",
				Type:      FieldBool,
				Name:      "Stock bajo",
				MicroData: MicroData{ItemType: "http://schema.org/Offer", Property: "inventoryAlertFlag"},
				ReadOnly:  true,
			},
			// Derivado: no se guarda, se calcula de los otros dos atributos.
			read: func(p *entity.Product) any { return p.StockOnHand < p.AlertThreshold },
		},
		{
			desc: FieldDescriptor{
				ID:        "desiredstock",
				Type:      FieldInt,
				Name:      "Stock objetivo",
				MicroData: MicroData{ItemType: "http://schema.org/Offer", Property: "inventoryTargetLevel"},
			},
			read:  func(p *entity.Product) any { return p.DesiredStock },
			write: intWrite(func(p *entity.Product) *int64 { return &p.DesiredStock }),
		},
		{
			desc: FieldDescriptor{
				ID:        "pmp",
				Type:      FieldDouble,
				Name:      "Precio medio ponderado",
				MicroData: MicroData{ItemType: "http://schema.org/Offer", Property: "averagePrice"},
				ReadOnly:  true,
			},
			read: func(p *entity.Product) any {
				f, _ := p.AveragePrice.Float64()
				return f
			},
			write: func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
				d, err := AsDecimal(value)
				if err != nil {
					return false, err
				}
				if d.Equal(p.AveragePrice) {
					return false, nil
				}
				p.AveragePrice = d
				return true, nil
			},
		},
	})
	return s
}

// intWrite escritura directa de un atributo entero con dirty-check.
func intWrite(target func(p *entity.Product) *int64) func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
	return func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
		n, err := AsInt(value)
		if err != nil {
			return false, err
		}
		field := target(p)
		if *field == n {
			return false, nil
		}
		*field = n
		return true, nil
	}
}
