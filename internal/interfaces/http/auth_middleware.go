package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agristock/depot-api/internal/application/dto"
	"github.com/agristock/depot-api/internal/domain/entity"
	"github.com/agristock/depot-api/pkg/jwt"
)

// Locals keys para los claims en Fiber.
const (
	LocalUserID   = "user_id"
	LocalRole     = "role"
	LocalClientID = "client_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, Role y ClientID
// a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, role, clientID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalClientID, clientID)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware. Un token sin claim de rol responde 401; un rol no
// permitido, 403.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta ruta"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto. No se valida aquí: un rol
// desconocido resuelve a alcance vacío en el core.
func GetRole(c *fiber.Ctx) entity.Role {
	s, _ := c.Locals(LocalRole).(string)
	return entity.Role(s)
}

// GetClientID devuelve el cliente afiliado del contexto (vacío para Admin).
func GetClientID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalClientID).(string)
	return s
}

// CurrentUser reconstruye el usuario autenticado a partir de los claims del
// token. Suficiente para resolver alcances de lectura; los caminos de
// escritura releen el perfil del almacén.
func CurrentUser(c *fiber.Ctx) *entity.User {
	return &entity.User{
		ID:       GetUserID(c),
		Role:     GetRole(c),
		ClientID: GetClientID(c),
	}
}
