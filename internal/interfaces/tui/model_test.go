package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

func newTestUI(t *testing.T) (Model, *menu.Model) {
	t.Helper()
	n := 0
	app := menu.NewModel(menu.WithIDGenerator(func() string {
		n++
		return "new" + string(rune('0'+n))
	}))
	return New(app, DefaultStyles(), zerolog.Nop()), app
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestTUI_ElegirRolYNavegar(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "c")
	assert.Equal(t, entity.RoleClient, app.Role())
	assert.Equal(t, entity.PageStarters, app.Page())

	// starters → main → desserts → checkout → guest_filter → welcome
	m = press(t, m, "tab", "tab", "tab", "tab")
	assert.Equal(t, entity.PageGuestFilter, app.Page())
	m = press(t, m, "tab")
	assert.Equal(t, entity.PageWelcome, app.Page())

	press(t, m, "shift+tab")
	assert.Equal(t, entity.PageGuestFilter, app.Page())
}

func TestTUI_RolLlevaASuPagina(t *testing.T) {
	m, app := newTestUI(t)
	assert.Contains(t, m.View(), "Starters: R66.50")

	m = press(t, m, "c")
	assert.Equal(t, entity.PageStarters, app.Page())

	m = press(t, m, "w", "k")
	assert.Equal(t, entity.RoleChef, app.Role())
	assert.Equal(t, entity.PageChefTools, app.Page())

	press(t, m, "w", "u")
	assert.Equal(t, entity.RoleUnset, app.Role())
	assert.Equal(t, entity.PageWelcome, app.Page())
}

func TestTUI_ChefNoVePaginaDeCliente(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "k")
	assert.Equal(t, entity.PageChefTools, app.Page())
	assert.NotContains(t, m.View(), "Filter Menu")
}

func TestTUI_PedidoYCheckout(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "c", "space", "down", "space")
	s := app.Snapshot()
	require.Len(t, s.Order, 2)
	assert.Equal(t, "s1", s.Order[0].Item.ID)
	assert.Equal(t, "s2", s.Order[1].Item.ID)

	m = press(t, m, "space")
	assert.Len(t, app.Snapshot().Order, 1, "volver a pulsar quita el plato")

	m = press(t, m, "w", "tab", "tab", "tab", "tab")
	require.Equal(t, entity.PageCheckout, app.Page())
	m = press(t, m, "enter")

	s = app.Snapshot()
	assert.Empty(t, s.Order)
	assert.Equal(t, "✅ Payment of R65 confirmed! Thank you.", s.Confirmation)
	assert.Contains(t, m.View(), "Payment of R65 confirmed")
}

func TestTUI_CheckoutVacioMuestraAviso(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "c", "tab", "tab", "tab")
	require.Equal(t, entity.PageCheckout, app.Page())
	m = press(t, m, "enter")
	assert.NotEmpty(t, m.status)
	assert.Empty(t, app.Snapshot().Confirmation)
}

func TestTUI_FiltroDeCliente(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "c", "w", "shift+tab")
	require.Equal(t, entity.PageGuestFilter, app.Page())

	m = press(t, m, "f")
	assert.Equal(t, entity.FilterFor(entity.CourseStarters), app.Snapshot().Filter)
	m = press(t, m, "f", "f", "f")
	assert.Equal(t, entity.FilterAll, app.Snapshot().Filter)
	assert.Contains(t, m.View(), "All Items (12)")
}

func TestTUI_ClienteNoEdita(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "c", "e")
	assert.Nil(t, m.form)
	assert.Nil(t, app.Snapshot().Editing)
	assert.NotEmpty(t, m.status)
}

func TestTUI_EditarPlato(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "k", "e")
	require.NotNil(t, m.form)
	require.NotNil(t, app.Snapshot().Editing)

	// borrar el nombre actual y escribir uno nuevo
	name := app.Snapshot().Editing.Name
	for range name {
		m = press(t, m, "backspace")
	}
	m = press(t, m, "Samoosas", "tab")
	for range "65" {
		m = press(t, m, "backspace")
	}
	m = press(t, m, "70", "enter")

	assert.Nil(t, m.form)
	it, ok := app.Snapshot().Menu.Find(entity.CourseStarters, "s1")
	require.True(t, ok)
	assert.Equal(t, "Samoosas", it.Name)
	assert.Equal(t, "70", it.Price.String())
}

func TestTUI_CancelarEdicion(t *testing.T) {
	m, app := newTestUI(t)
	before, _ := app.Snapshot().Menu.Find(entity.CourseStarters, "s1")
	m = press(t, m, "k", "e", "zzz", "esc")
	assert.Nil(t, m.form)
	assert.Nil(t, app.Snapshot().Editing)
	after, _ := app.Snapshot().Menu.Find(entity.CourseStarters, "s1")
	assert.Equal(t, before, after)
}

func TestTUI_AltaDePlato(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "k", "a")
	require.NotNil(t, m.form)
	assert.True(t, app.Snapshot().AddPanelOpen)

	m = press(t, m, "Malva", "tab", "Warm pudding", "tab", "right", "right", "tab")

	// sin precio se rechaza y el formulario sigue abierto
	m = press(t, m, "enter")
	assert.NotNil(t, m.form)
	assert.NotEmpty(t, m.status)

	m = press(t, m, "55", "enter")
	assert.Nil(t, m.form)

	desserts := app.Snapshot().Menu.Items(entity.CourseDesserts)
	require.Len(t, desserts, 5)
	assert.Equal(t, "new1", desserts[4].ID)
	assert.Equal(t, "Malva", desserts[4].Name)
	assert.Equal(t, "Warm pudding", desserts[4].Description)
	assert.False(t, app.Snapshot().AddPanelOpen)
}

func TestTUI_EliminarPlato(t *testing.T) {
	m, app := newTestUI(t)
	m = press(t, m, "k", "w", "tab", "tab", "x")
	assert.Len(t, app.Snapshot().Menu.Items(entity.CourseMain), 3)
	_, ok := app.Snapshot().Menu.Find(entity.CourseMain, "m1")
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Main Course")
}
