package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingUser          = errors.New("no hay usuario autenticado en la sesión")
	ErrMissingField         = errors.New("campo obligatorio ausente")
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrAccessDenied         = errors.New("acceso denegado")
	ErrStoreWriteFailed     = errors.New("el almacén rechazó la escritura")
	ErrConfigurationMissing = errors.New("configuración requerida ausente")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInsufficientStock    = errors.New("stock insuficiente")
)

// MissingField construye un error de campo obligatorio ausente con el nombre del campo.
// Se compara con errors.Is(err, ErrMissingField).
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
