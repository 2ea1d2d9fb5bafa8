// Package ledger contiene la lógica central del libro de movimientos:
// resolución de alcance por rol, agregación de stock y composición de
// consultas. Todo el paquete son funciones puras sobre snapshots; no
// toca la red ni el almacén.
package ledger

import "github.com/agristock/depot-api/internal/domain/entity"

type scopeKind int

const (
	scopeNone   scopeKind = iota // fail-closed: ninguna fila visible
	scopeAll                     // sin restricción (Admin)
	scopeClient                  // restringido a un solo cliente (Farmer)
)

// Scope es el predicado de visibilidad derivado del rol del usuario.
// Es la única autoridad de rol → filtro: ningún otro componente vuelve a
// ramificar por rol, consulta el Scope.
type Scope struct {
	kind     scopeKind
	clientID string
}

// ScopeAll acepta todas las filas.
func ScopeAll() Scope { return Scope{kind: scopeAll} }

// ScopeClient acepta solo las filas del cliente indicado.
func ScopeClient(clientID string) Scope { return Scope{kind: scopeClient, clientID: clientID} }

// ScopeNone no acepta ninguna fila.
func ScopeNone() Scope { return Scope{} }

// ResolveScope traduce rol y afiliación a un alcance de lectura/escritura.
// Admin ve todo; Farmer solo su cliente afiliado. Un Farmer sin cliente
// afiliado, o un rol desconocido, producen el alcance vacío: un perfil
// malformado nunca filtra los datos de todos los clientes.
func ResolveScope(u *entity.User) Scope {
	if u == nil {
		return ScopeNone()
	}
	switch u.Role {
	case entity.RoleAdmin:
		return ScopeAll()
	case entity.RoleFarmer:
		if u.ClientID == "" {
			return ScopeNone()
		}
		return ScopeClient(u.ClientID)
	default:
		return ScopeNone()
	}
}

// IsEmpty indica el alcance vacío (cero filas, sin consultar el almacén).
func (s Scope) IsEmpty() bool { return s.kind == scopeNone }

// All indica acceso sin restricción.
func (s Scope) All() bool { return s.kind == scopeAll }

// ClientID devuelve el cliente al que se restringe el alcance, si aplica.
func (s Scope) ClientID() (string, bool) {
	if s.kind == scopeClient {
		return s.clientID, true
	}
	return "", false
}

// AllowsClient indica si la fila de cliente es visible bajo este alcance.
func (s Scope) AllowsClient(c entity.Client) bool {
	switch s.kind {
	case scopeAll:
		return true
	case scopeClient:
		return c.ID == s.clientID
	default:
		return false
	}
}

// AllowsMovement indica si la fila de movimiento es visible bajo este alcance.
func (s Scope) AllowsMovement(m entity.StockMovement) bool {
	switch s.kind {
	case scopeAll:
		return true
	case scopeClient:
		return m.ClientID == s.clientID
	default:
		return false
	}
}

// AllowsWrite indica si bajo este alcance se puede escribir sobre el cliente dado.
func (s Scope) AllowsWrite(clientID string) bool {
	if clientID == "" {
		return false
	}
	switch s.kind {
	case scopeAll:
		return true
	case scopeClient:
		return clientID == s.clientID
	default:
		return false
	}
}
