package dto

import "time"

// RegisterRequest entrada para registro: crea la identidad y el perfil en un
// solo paso. Un rol Farmer exige client_id (cliente afiliado existente).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"required,oneof=Admin Farmer"`
	ClientID string `json:"client_id" validate:"omitempty,uuid"`
}

// UserResponse salida de un perfil (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	ClientID  string    `json:"client_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el perfil autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserStatusRequest entrada para suspender o reactivar un usuario.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Suspended"`
}
