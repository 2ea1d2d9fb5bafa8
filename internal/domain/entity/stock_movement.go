package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de movimiento de stock.
const (
	MovementIn  = "in"  // entrada
	MovementOut = "out" // salida
)

// StockMovement es una entrada del libro de movimientos: una transacción de
// stock (entrada o salida) de un cliente. Los pesos son kilogramos en NUMERIC
// (decimal) y nunca negativos. El registro es append-mostly: la única mutación
// in situ permitida es el flag IsCommentRead.
//
// ProductWeight debería coincidir con TotalWeight menos el peso de los
// envases, pero esa conciliación no se verifica aquí: es una restricción
// blanda del negocio.
type StockMovement struct {
	ID               string
	ClientID         string
	Type             string // in, out
	Product          string
	TotalWeight      decimal.Decimal
	PlasticBoxCount  int
	PlasticBoxWeight decimal.Decimal
	WoodBoxCount     int
	WoodBoxWeight    decimal.Decimal
	ProductWeight    decimal.Decimal
	Date             time.Time
	RecordedBy       string // UserID de quien registró el movimiento
	Comment          string // comentario del operador
	FarmerComment    string // comentario visible para el agricultor
	IsCommentRead    bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
