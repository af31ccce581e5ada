package sync

// Session contexto de actor autenticado para una operación de sincronización.
// Se pasa explícito a cada operación del ciclo de vida: la ausencia de actor
// es una precondición verificada, nunca un deref implícito de estado global.
type Session struct {
	UserID   string
	Login    string
	TenantID string
}

// Authenticated indica si hay un actor válido en la sesión.
func (s *Session) Authenticated() bool {
	return s != nil && s.Login != ""
}

// Actor devuelve el login del actor ("" sin sesión), para el rastro del almacén.
func (s *Session) Actor() string {
	if s == nil {
		return ""
	}
	return s.Login
}
