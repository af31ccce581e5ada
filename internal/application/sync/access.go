package sync

// AccessGate predicado de control de acceso multi-tenant. Se evalúa sobre el
// discriminador de tenant del registro en load/create y sobre una sonda sin
// discriminador en delete (relajación deliberada: el chequeo de borrado es
// agnóstico al tenant).
type AccessGate interface {
	IsTenantAllowed(tenantID string) bool
}

// TenantGate implementación basada en la lista de entidades visibles para la
// instalación. Lista vacía = todas permitidas. Un tenantID vacío siempre pasa
// (es la sonda de borrado sin discriminador).
type TenantGate struct {
	allowed map[string]struct{}
}

// NewTenantGate construye el gate con las entidades permitidas.
func NewTenantGate(tenantIDs ...string) *TenantGate {
	g := &TenantGate{allowed: make(map[string]struct{}, len(tenantIDs))}
	for _, id := range tenantIDs {
		if id != "" {
			g.allowed[id] = struct{}{}
		}
	}
	return g
}

// IsTenantAllowed implementa AccessGate.
func (g *TenantGate) IsTenantAllowed(tenantID string) bool {
	if tenantID == "" {
		return true
	}
	if len(g.allowed) == 0 {
		return true
	}
	_, ok := g.allowed[tenantID]
	return ok
}
