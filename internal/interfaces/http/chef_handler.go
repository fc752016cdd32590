package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/foodhub/internal/application/dto"
	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/application/session"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// ChefHandler edición, alta y baja de platos. Las guardas de rol viven en el modelo;
// un cliente recibe 403 sin que el estado cambie.
type ChefHandler struct {
	sessions *session.Manager
}

// NewChefHandler construye el handler.
func NewChefHandler(sessions *session.Manager) *ChefHandler {
	return &ChefHandler{sessions: sessions}
}

// StartEdit godoc
// @Summary      Empezar a editar un plato
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Param        course  path  string  true  "starters | main | desserts"
// @Param        id      path  string  true  "ID del plato"
// @Success      200     {object}  dto.StateResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/menu/{course}/{id}/edit [post]
func (h *ChefHandler) StartEdit(c *fiber.Ctx) error {
	course, err := entity.ParseCourse(c.Params("course"))
	if err != nil {
		return writeError(c, err)
	}
	id := utils.CopyString(c.Params("id"))
	return respond(c, h.sessions, func(m *menu.Model) error { return m.StartEdit(course, id) })
}

// UpdateEdit godoc
// @Summary      Modificar el borrador de edición
// @Tags         chef
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateFieldRequest  true  "name | price | description"
// @Success      200   {object}  dto.StateResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/edit [patch]
func (h *ChefHandler) UpdateEdit(c *fiber.Ctx) error {
	f, value, ok, err := parseField(c)
	if !ok {
		return err
	}
	return respond(c, h.sessions, func(m *menu.Model) error { return m.UpdateEditBuffer(f, value) })
}

// SaveEdit godoc
// @Summary      Guardar la edición
// @Description  Precio vacío o ilegible se guarda como 0.
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/edit/save [post]
func (h *ChefHandler) SaveEdit(c *fiber.Ctx) error {
	return respond(c, h.sessions, func(m *menu.Model) error { return m.SaveEdit() })
}

// CancelEdit godoc
// @Summary      Descartar la edición
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Router       /api/edit [delete]
func (h *ChefHandler) CancelEdit(c *fiber.Ctx) error {
	return respond(c, h.sessions, func(m *menu.Model) error {
		m.CancelEdit()
		return nil
	})
}

// Remove godoc
// @Summary      Quitar un plato de la carta
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Param        course  path  string  true  "starters | main | desserts"
// @Param        id      path  string  true  "ID del plato"
// @Success      200     {object}  dto.StateResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/menu/{course}/{id} [delete]
func (h *ChefHandler) Remove(c *fiber.Ctx) error {
	course, err := entity.ParseCourse(c.Params("course"))
	if err != nil {
		return writeError(c, err)
	}
	id := utils.CopyString(c.Params("id"))
	return respond(c, h.sessions, func(m *menu.Model) error { return m.RemoveItem(course, id) })
}

// OpenAddPanel godoc
// @Summary      Abrir el panel de alta
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Router       /api/add-panel/open [post]
func (h *ChefHandler) OpenAddPanel(c *fiber.Ctx) error {
	return respond(c, h.sessions, func(m *menu.Model) error { return m.OpenAddPanel() })
}

// CloseAddPanel godoc
// @Summary      Cerrar el panel de alta
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Router       /api/add-panel/close [post]
func (h *ChefHandler) CloseAddPanel(c *fiber.Ctx) error {
	return respond(c, h.sessions, func(m *menu.Model) error {
		m.CloseAddPanel()
		return nil
	})
}

// UpdateNewItem godoc
// @Summary      Modificar el borrador de alta
// @Tags         chef
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateFieldRequest  true  "name | description | course | price"
// @Success      200   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/add-panel [patch]
func (h *ChefHandler) UpdateNewItem(c *fiber.Ctx) error {
	f, value, ok, err := parseField(c)
	if !ok {
		return err
	}
	return respond(c, h.sessions, func(m *menu.Model) error { return m.UpdateNewItemBuffer(f, value) })
}

// SubmitNewItem godoc
// @Summary      Agregar el plato del borrador
// @Description  Nombre o precio vacíos, o precio no numérico, se rechazan con 400.
// @Tags         chef
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.StateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/add-panel/submit [post]
func (h *ChefHandler) SubmitNewItem(c *fiber.Ctx) error {
	s, err := h.sessions.Do(GetSessionID(c), func(m *menu.Model) error {
		_, err := m.AddMenuItem()
		return err
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewStateResponse(s))
}

// parseField lee un dto.UpdateFieldRequest. Con ok=false la respuesta de error ya está
// escrita y err es el resultado de escribirla.
func parseField(c *fiber.Ctx) (f menu.Field, value string, ok bool, err error) {
	var in dto.UpdateFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return "", "", false, badBody(c)
	}
	f, perr := menu.ParseField(in.Field)
	if perr != nil {
		return "", "", false, writeError(c, perr)
	}
	return f, in.Value, true, nil
}
