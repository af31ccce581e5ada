package sync

import (
	"fmt"

	"github.com/jhoicas/Sincronizador-api/internal/domain"
)

// storeWriteError normaliza un rechazo del almacén de registros: conserva el
// detalle (error subyacente o código no positivo) y se compara con
// errors.Is(err, domain.ErrStoreWriteFailed).
func storeWriteError(op string, code int64, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStoreWriteFailed)
	}
	return fmt.Errorf("%s: código de resultado %d: %w", op, code, domain.ErrStoreWriteFailed)
}
