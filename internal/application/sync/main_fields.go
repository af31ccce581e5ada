package sync

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
	"github.com/jhoicas/Sincronizador-api/internal/domain/measure"
)

// MainFields pipeline de especificaciones físicas del producto (peso, largo,
// superficie, volumen). Cada campo externo es el valor canónico de la medida;
// internamente se guarda el par (valor, escala) que acepte el almacén.
type MainFields struct {
	*fieldTable
}

// NewMainFields construye el pipeline. variants puede ser nil cuando no hay
// gestión de variantes (el peso entonces no propaga nada).
func NewMainFields(variants *VariantPropagator) *MainFields {
	m := &MainFields{}

	weightWrite := func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
		changed, normalized, err := writeMeasurement(measure.Weight, &p.Weight, value)
		if err != nil || !changed {
			return false, err
		}
		if variants != nil {
			if err := variants.PropagateWeight(ctx, p, normalized); err != nil {
				return true, err
			}
		}
		return true, nil
	}

	m.fieldTable = newFieldTable([]fieldHandler{
		{
			desc: FieldDescriptor{
				ID:          "weight",
				Type:        FieldDouble,
				Name:        "Peso",
				Description: "Peso (" + measure.Symbol(measure.Weight, 0) + ")",
				MicroData:   MicroData{ItemType: "http://schema.org/Product", Property: "weight"},
			},
			read:  func(p *entity.Product) any { return readMeasurement(p.Weight) },
			write: weightWrite,
		},
		{
			desc: FieldDescriptor{
				ID:          "length",
				Type:        FieldDouble,
				Name:        "Largo",
				Description: "Largo (" + measure.Symbol(measure.Length, 0) + ")",
				MicroData:   MicroData{ItemType: "http://schema.org/Product", Property: "depth"},
			},
			read: func(p *entity.Product) any { return readMeasurement(p.Length) },
			write: func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
				changed, _, err := writeMeasurement(measure.Length, &p.Length, value)
				return changed, err
			},
		},
		{
			desc: FieldDescriptor{
				ID:          "surface",
				Type:        FieldDouble,
				Name:        "Superficie",
				Description: "Superficie (" + measure.Symbol(measure.Surface, 0) + ")",
				MicroData:   MicroData{ItemType: "http://schema.org/Product", Property: "surface"},
			},
			read: func(p *entity.Product) any { return readMeasurement(p.Surface) },
			write: func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
				changed, _, err := writeMeasurement(measure.Surface, &p.Surface, value)
				return changed, err
			},
		},
		{
			desc: FieldDescriptor{
				ID:          "volume",
				Type:        FieldDouble,
				Name:        "Volumen",
				Description: "Volumen (" + measure.Symbol(measure.Volume, 0) + ")",
				MicroData:   MicroData{ItemType: "http://schema.org/Product", Property: "volume"},
			},
			read: func(p *entity.Product) any { return readMeasurement(p.Volume) },
			write: func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error) {
				changed, _, err := writeMeasurement(measure.Volume, &p.Volume, value)
				return changed, err
			},
		},
	})
	return m
}

// readMeasurement expone la medida como double canónico.
func readMeasurement(m measure.Measurement) float64 {
	f, _ := m.Canonical().Float64()
	return f
}

// writeMeasurement hace el dirty-check por cadena canónica y, solo si el valor
// entrante difiere, normaliza y muta la medida.
func writeMeasurement(dim measure.Dimension, target *measure.Measurement, value any) (bool, measure.Measurement, error) {
	incoming := AsString(value)
	if incoming == measure.Display(*target) {
		return false, *target, nil
	}
	normalized, err := measure.Normalize(dim, incoming)
	if err != nil {
		return false, *target, err
	}
	*target = normalized
	return true, normalized, nil
}
