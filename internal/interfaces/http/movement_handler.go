package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/application/movement"
	"github.com/agristock/depot-api/internal/domain"
)

// MovementHandler maneja los endpoints del libro de movimientos.
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos visibles bajo el alcance del usuario
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "máximo de filas (0 = todas), aplicado tras el orden"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), CurrentUser(c), c.QueryInt("limit"))
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		out = []dto.MovementResponse{}
	}
	return c.JSON(out)
}

// Record godoc
// @Summary      Registrar un movimiento de stock
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateMovementRequest  true  "movimiento"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo in/out, producto y pesos no negativos son requeridos"})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "perfil no encontrado para la sesión"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta suspendida o cliente fuera del alcance"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CLIENT_NOT_FOUND", Message: "el cliente no existe"})
		case errors.Is(err, domain.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkCommentRead godoc
// @Summary      Marcar como leído el comentario del agricultor (solo Admin)
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/comment-read [patch]
func (h *MovementHandler) MarkCommentRead(c *fiber.Ctx) error {
	err := h.uc.MarkCommentRead(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "perfil no encontrado para la sesión"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un Admin activo puede marcar comentarios"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		case errors.Is(err, domain.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
