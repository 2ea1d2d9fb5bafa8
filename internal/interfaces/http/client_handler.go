package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appclient "github.com/agristock/depot-api/internal/application/client"
	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain"
	"github.com/agristock/depot-api/internal/domain/ledger"
)

// ClientHandler maneja los endpoints de clientes del depósito.
type ClientHandler struct {
	uc *appclient.UseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *appclient.UseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente (solo Admin)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateClientRequest  true  "datos del cliente"
// @Success      201  {object}  dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y datos de contacto son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el cliente ya existe"})
		case errors.Is(err, domain.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes visibles bajo el alcance del usuario
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	scope := ledger.ResolveScope(CurrentUser(c))
	out, err := h.uc.List(c.Context(), scope)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		out = []dto.ClientResponse{}
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un cliente por ID (404 si está fuera del alcance)
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	scope := ledger.ResolveScope(CurrentUser(c))
	out, err := h.uc.Get(c.Context(), scope, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			// Fuera del alcance responde igual que inexistente.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		case errors.Is(err, domain.ErrUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "almacén de datos no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
