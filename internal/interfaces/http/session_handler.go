package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub/internal/application/dto"
	"github.com/jhoicas/foodhub/internal/application/session"
	"github.com/jhoicas/foodhub/pkg/jwt"
)

// SessionHandler crea, consulta y cierra sesiones de carta.
type SessionHandler struct {
	sessions *session.Manager
	tokens   SessionTokenConfig
}

// NewSessionHandler construye el handler.
func NewSessionHandler(sessions *session.Manager, tokens SessionTokenConfig) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens}
}

// Create godoc
// @Summary      Abrir sesión
// @Description  Crea una sesión en memoria con la carta semilla y devuelve su token.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	id, state := h.sessions.Create()
	token, err := jwt.Generate(h.tokens.Secret, id, h.tokens.Issuer, h.tokens.ExpMinutes)
	if err != nil {
		h.sessions.End(id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{
		Token:            token,
		ExpiresInMinutes: h.tokens.ExpMinutes,
		State:            dto.NewStateResponse(state),
	})
}

// State godoc
// @Summary      Estado de la sesión
// @Tags         sessions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/state [get]
func (h *SessionHandler) State(c *fiber.Ctx) error {
	s, err := h.sessions.State(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewStateResponse(s))
}

// End godoc
// @Summary      Cerrar sesión
// @Tags         sessions
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sessions/current [delete]
func (h *SessionHandler) End(c *fiber.Ctx) error {
	if !h.sessions.End(GetSessionID(c)) {
		return writeError(c, session.ErrUnknownSession)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
