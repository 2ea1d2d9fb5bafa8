package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agristock/depot-api/internal/application/dto"
	appuser "github.com/agristock/depot-api/internal/application/user"
	"github.com/agristock/depot-api/internal/domain"
)

// UserHandler maneja los endpoints administrativos de perfiles.
type UserHandler struct {
	uc *appuser.UseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *appuser.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (solo Admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de filas"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		out = []dto.UserResponse{}
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Suspender o reactivar una cuenta (solo Admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "Active o Suspended"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/status [patch]
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser Active o Suspended"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
