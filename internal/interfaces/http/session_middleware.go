package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub/internal/application/dto"
	"github.com/jhoicas/foodhub/pkg/jwt"
)

// LocalSessionID key de Fiber Locals con el id de la sesión de carta.
const LocalSessionID = "session_id"

// HeaderSessionToken header con el token renovado tras cada petición aceptada.
const HeaderSessionToken = "X-Session-Token"

// SessionTokenConfig firma de los tokens de sesión. ExpMinutes es la misma inactividad
// máxima de la sesión; 0 = el token no expira.
type SessionTokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// SessionMiddleware valida el Bearer Token de sesión y deja el id en c.Locals.
// Con expiración activa, cada respuesta sin error lleva un token renovado en
// HeaderSessionToken: el token vence por inactividad igual que la sesión.
func SessionMiddleware(tokens SessionTokenConfig) fiber.Handler {
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
		sessionID, err := jwt.Parse(tokens.Secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSessionID, sessionID)

		if err := c.Next(); err != nil {
			return err
		}
		if tokens.ExpMinutes > 0 && c.Response().StatusCode() < fiber.StatusBadRequest {
			if fresh, err := jwt.Generate(tokens.Secret, sessionID, tokens.Issuer, tokens.ExpMinutes); err == nil {
				c.Set(HeaderSessionToken, fresh)
			}
		}
		return nil
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
