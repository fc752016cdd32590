package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub/internal/application/dto"
	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/application/session"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// NavigationHandler rol, página, filtro y consultas de la carta.
type NavigationHandler struct {
	sessions *session.Manager
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(sessions *session.Manager) *NavigationHandler {
	return &NavigationHandler{sessions: sessions}
}

// SetRole godoc
// @Summary      Elegir rol
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetRoleRequest  true  "client | chef"
// @Success      200   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/state/role [put]
func (h *NavigationHandler) SetRole(c *fiber.Ctx) error {
	var in dto.SetRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, h.sessions, func(m *menu.Model) error {
		m.SelectRole(role)
		return nil
	})
}

// Navigate godoc
// @Summary      Cambiar de página
// @Description  Las páginas chef_tools y guest_filter exigen rol chef y client respectivamente.
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NavigateRequest  true  "Página destino"
// @Success      200   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/state/page [put]
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	var in dto.NavigateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	page, err := entity.ParsePage(in.Page)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, h.sessions, func(m *menu.Model) error { return m.Navigate(page) })
}

// SetFilter godoc
// @Summary      Filtrar la carta
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetFilterRequest  true  "all | starters | main | desserts"
// @Success      200   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/state/filter [put]
func (h *NavigationHandler) SetFilter(c *fiber.Ctx) error {
	var in dto.SetFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	f, err := entity.ParseCourseFilter(in.Filter)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, h.sessions, func(m *menu.Model) error {
		m.SetFilter(f)
		return nil
	})
}

// FilteredItems godoc
// @Summary      Platos visibles con el filtro activo
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FilteredItemsResponse
// @Router       /api/menu/items [get]
func (h *NavigationHandler) FilteredItems(c *fiber.Ctx) error {
	s, err := h.sessions.State(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewFilteredItemsResponse(s))
}

// Averages godoc
// @Summary      Precio medio por curso
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/menu/averages [get]
func (h *NavigationHandler) Averages(c *fiber.Ctx) error {
	out := make(map[string]string, 3)
	err := h.sessions.View(GetSessionID(c), func(m *menu.Model) {
		for course, avg := range m.Averages() {
			out[string(course)] = avg
		}
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// respond aplica el comando a la sesión del token y devuelve la nueva foto.
func respond(c *fiber.Ctx, sessions *session.Manager, cmd session.Command) error {
	s, err := sessions.Do(GetSessionID(c), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewStateResponse(s))
}
