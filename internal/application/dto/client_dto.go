package dto

import "time"

// CreateClientRequest entrada para crear un cliente del depósito.
// Nombre y datos de contacto son obligatorios (invariante del modelo).
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	JoinDate string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Type     string `json:"type" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Comment  string `json:"comment" validate:"omitempty,max=500"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JoinDate  time.Time `json:"join_date"`
	Type      string    `json:"type"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
