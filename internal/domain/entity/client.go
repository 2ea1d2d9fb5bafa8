package entity

import "time"

// Client representa un cliente del depósito (productor asociado).
// El registro pertenece al almacén externo; el core lo trata como un
// snapshot inmutable durante cada cálculo.
type Client struct {
	ID        string
	Name      string
	JoinDate  time.Time
	Type      string // tipo de cliente (productor, cooperativa, etc.)
	Phone     string
	Address   string
	Email     string
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
