package entity

import "time"

// Role es el rol cerrado de un usuario. Cualquier valor fuera de las
// constantes se trata como desconocido y los alcances lo resuelven
// como vacío (fail-closed).
type Role string

// Roles válidos para User.
const (
	RoleAdmin  Role = "Admin"
	RoleFarmer Role = "Farmer"
)

// ParseRole valida un rol recibido del exterior (body JSON, claim de token).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleFarmer:
		return Role(s), true
	}
	return "", false
}

// Estados válidos para User.
const (
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
)

// User representa el perfil de un usuario del sistema (uno a uno con la
// identidad de autenticación). Un Farmer siempre debe tener ClientID; un
// perfil que no lo cumple no produce error: simplemente no ve ninguna fila.
type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	Role         Role
	Status       string // Active, Suspended
	ClientID     string // cliente afiliado; vacío para Admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
