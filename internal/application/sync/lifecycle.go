package sync

import (
	"fmt"
	"time"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
)

// UpdateResult resultado de un update en dos fases. El éxito del update
// principal es el que manda: un fallo de campos extendidos queda registrado
// aquí como advertencia no fatal, nunca como error de la operación.
type UpdateResult struct {
	ID             string
	ExtraFieldsErr error
}

// dateLayouts formatos de fecha aceptados en el payload externo.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha %q no reconocida: %w", raw, domain.ErrInvalidInput)
}
