package sync

import (
	"context"

	"github.com/jhoicas/Sincronizador-api/internal/domain/entity"
)

// FieldType tipo semántico de un campo sincronizable.
type FieldType string

const (
	FieldDouble FieldType = "double"
	FieldInt    FieldType = "int"
	FieldBool   FieldType = "bool"
)

// MicroData anotación de vocabulario semántico (schema.org) de un campo.
type MicroData struct {
	ItemType string
	Property string
}

// FieldDescriptor describe un campo soportado por un pipeline.
type FieldDescriptor struct {
	ID          string
	Type        FieldType
	Name        string
	Description string
	MicroData   MicroData
	Listed      bool // aparece en listados/resúmenes
	ReadOnly    bool
	Required    bool
}

// WriteResult resultado de un intento de escritura.
// Handled=false significa que el campo no pertenece al vocabulario del
// pipeline: no es un error, el siguiente pipeline de la cadena lo intentará.
type WriteResult struct {
	Handled bool
	Changed bool
}

// Pipeline mapea identificadores de campo a lecturas y escrituras sobre el
// snapshot en memoria del producto. Las escrituras hacen dirty-check antes de
// mutar: re-derivan la representación externa actual y la comparan como cadena
// canónica con el valor entrante.
type Pipeline interface {
	Describe() []FieldDescriptor
	Read(product *entity.Product, fieldID string) (any, bool)
	Write(ctx context.Context, ses *Session, product *entity.Product, fieldID string, value any) (WriteResult, error)
}

// Chain prueba cada pipeline en orden; gana el primero que maneja el campo.
// Permite componer los vocabularios (especificaciones, stock) sin que cada
// pipeline conozca los campos de los demás.
type Chain []Pipeline

// Describe concatena los descriptores de todos los pipelines.
func (c Chain) Describe() []FieldDescriptor {
	var all []FieldDescriptor
	for _, p := range c {
		all = append(all, p.Describe()...)
	}
	return all
}

// Read intenta la lectura en cada pipeline.
func (c Chain) Read(product *entity.Product, fieldID string) (any, bool) {
	for _, p := range c {
		if v, ok := p.Read(product, fieldID); ok {
			return v, true
		}
	}
	return nil, false
}

// Write intenta la escritura en cada pipeline.
func (c Chain) Write(ctx context.Context, ses *Session, product *entity.Product, fieldID string, value any) (WriteResult, error) {
	for _, p := range c {
		res, err := p.Write(ctx, ses, product, fieldID, value)
		if err != nil || res.Handled {
			return res, err
		}
	}
	return WriteResult{}, nil
}

// fieldHandler entrada de la tabla de despacho de un pipeline: descriptor más
// funciones de lectura/escritura. write devuelve si la escritura cambió estado.
type fieldHandler struct {
	desc  FieldDescriptor
	read  func(p *entity.Product) any
	write func(ctx context.Context, ses *Session, p *entity.Product, value any) (bool, error)
}

// fieldTable implementación de Pipeline sobre una tabla registrada id → handler.
// Un identificador que no está en la tabla es un no-op, nunca un error.
type fieldTable struct {
	order    []string
	handlers map[string]fieldHandler
}

func newFieldTable(handlers []fieldHandler) *fieldTable {
	t := &fieldTable{handlers: make(map[string]fieldHandler, len(handlers))}
	for _, h := range handlers {
		t.order = append(t.order, h.desc.ID)
		t.handlers[h.desc.ID] = h
	}
	return t
}

func (t *fieldTable) Describe() []FieldDescriptor {
	out := make([]FieldDescriptor, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.handlers[id].desc)
	}
	return out
}

func (t *fieldTable) Read(product *entity.Product, fieldID string) (any, bool) {
	h, ok := t.handlers[fieldID]
	if !ok || h.read == nil {
		return nil, false
	}
	return h.read(product), true
}

func (t *fieldTable) Write(ctx context.Context, ses *Session, product *entity.Product, fieldID string, value any) (WriteResult, error) {
	h, ok := t.handlers[fieldID]
	if !ok || h.write == nil {
		return WriteResult{}, nil
	}
	changed, err := h.write(ctx, ses, product, value)
	if err != nil {
		return WriteResult{Handled: true}, err
	}
	return WriteResult{Handled: true, Changed: changed}, nil
}
