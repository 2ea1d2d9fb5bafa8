package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las cuatro cifras de stock se calculan sobre TODOS los movimientos
// visibles bajo el alcance del usuario; recent_movements es solo la página
// más reciente para mostrar.
type DashboardSummaryDTO struct {
	TotalIn        decimal.Decimal `json:"total_in"`       // suma de entradas (kg)
	TotalOut       decimal.Decimal `json:"total_out"`      // suma de salidas (kg)
	CurrentStock   decimal.Decimal `json:"current_stock"`  // total_in - total_out, puede ser negativo
	UnreadComments int             `json:"unread_comments"`
	ClientCount    int             `json:"client_count"` // clientes visibles bajo el alcance

	RecentMovements []MovementResponse `json:"recent_movements"`

	DateLabel string `json:"date_label"` // ej: "Août 2026"
}
