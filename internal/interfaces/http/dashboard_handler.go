package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agristock/depot-api/internal/application/dashboard"
	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
)

// DashboardHandler maneja el resumen del tablero de stock.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del tablero: cifras de stock y movimientos recientes
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "filas recientes a mostrar (default 10)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
//
// Las cifras (total_in, total_out, current_stock, unread_comments) se
// calculan sobre todos los movimientos visibles bajo el alcance del usuario;
// el límite solo recorta la tabla de recientes.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user.ID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id no encontrado en el token"})
	}

	summary, err := h.uc.GetSummary(c.Context(), user, c.QueryInt("limit"))
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
