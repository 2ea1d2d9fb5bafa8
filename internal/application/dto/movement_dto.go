package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest entrada para registrar un movimiento de stock.
// Los pesos son kilogramos y no pueden ser negativos. No se verifica que
// product_weight concuerde con total_weight menos los envases.
type CreateMovementRequest struct {
	ClientID         string          `json:"client_id" validate:"required,uuid"`
	Type             string          `json:"type" validate:"required,oneof=in out"`
	Product          string          `json:"product" validate:"required,min=1,max=200"`
	TotalWeight      decimal.Decimal `json:"total_weight"`
	PlasticBoxCount  int             `json:"plastic_box_count"`
	PlasticBoxWeight decimal.Decimal `json:"plastic_box_weight"`
	WoodBoxCount     int             `json:"wood_box_count"`
	WoodBoxWeight    decimal.Decimal `json:"wood_box_weight"`
	ProductWeight    decimal.Decimal `json:"product_weight"`
	Date             string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Comment          string          `json:"comment" validate:"omitempty,max=500"`
	FarmerComment    string          `json:"farmer_comment" validate:"omitempty,max=500"`
}

// MovementResponse fila de movimiento para listados, con los nombres
// desnormalizados del cliente y de quien registró.
type MovementResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	ClientName       string          `json:"client_name,omitempty"`
	Type             string          `json:"type"`
	Product          string          `json:"product"`
	TotalWeight      decimal.Decimal `json:"total_weight"`
	PlasticBoxCount  int             `json:"plastic_box_count"`
	PlasticBoxWeight decimal.Decimal `json:"plastic_box_weight"`
	WoodBoxCount     int             `json:"wood_box_count"`
	WoodBoxWeight    decimal.Decimal `json:"wood_box_weight"`
	ProductWeight    decimal.Decimal `json:"product_weight"`
	Date             time.Time       `json:"date"`
	RecordedBy       string          `json:"recorded_by_user_id"`
	RecordedByName   string          `json:"recorded_by_name,omitempty"`
	Comment          string          `json:"comment,omitempty"`
	FarmerComment    string          `json:"farmer_comment,omitempty"`
	IsCommentRead    bool            `json:"is_comment_read"`
	CreatedAt        time.Time       `json:"created_at"`
}
