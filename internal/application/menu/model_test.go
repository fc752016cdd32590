package menu_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func seqIDs(prefix string) menu.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newChef(t *testing.T, opts ...menu.Option) *menu.Model {
	t.Helper()
	m := menu.NewModel(append([]menu.Option{menu.WithIDGenerator(seqIDs("n"))}, opts...)...)
	m.SelectRole(entity.RoleChef)
	return m
}

func newClient(t *testing.T, opts ...menu.Option) *menu.Model {
	t.Helper()
	m := menu.NewModel(opts...)
	m.SelectRole(entity.RoleClient)
	return m
}

func itemIDs(items []entity.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func twoStarters() entity.Menu {
	return entity.NewMenu(
		[]entity.MenuItem{
			{ID: "s1", Name: "Garlic Bread", Price: decimal.NewFromInt(65)},
			{ID: "s2", Name: "Soup", Price: decimal.NewFromInt(78)},
		},
		nil, nil,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial y selectores
// ──────────────────────────────────────────────────────────────────────────────

func TestNewModel_EstadoInicial(t *testing.T) {
	s := menu.NewModel().Snapshot()

	assert.Equal(t, entity.PageWelcome, s.Page)
	assert.Equal(t, entity.RoleUnset, s.Role)
	assert.Equal(t, entity.FilterAll, s.Filter)
	assert.Len(t, s.Menu.Items(entity.CourseStarters), 4)
	assert.Len(t, s.Menu.Items(entity.CourseMain), 4)
	assert.Len(t, s.Menu.Items(entity.CourseDesserts), 4)
	assert.Empty(t, s.Order)
	assert.Nil(t, s.Editing)
	assert.Equal(t, entity.CourseStarters, s.NewItem.Course)
	assert.Equal(t, map[entity.Course]string{
		entity.CourseStarters: "66.50",
		entity.CourseMain:     "140.50",
		entity.CourseDesserts: "77.25",
	}, s.Averages)
}

func TestSelectRole_NoLimpiaPedido(t *testing.T) {
	m := newClient(t)
	_, err := m.ToggleOrderItem("s1")
	require.NoError(t, err)

	m.SelectRole(entity.RoleChef)
	assert.Len(t, m.Snapshot().Order, 1)
}

func TestSelectRole_DejarDeSerChefDescartaBorradores(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.Navigate(entity.PageChefTools))
	require.NoError(t, m.StartEdit(entity.CourseMain, "m1"))
	require.NoError(t, m.OpenAddPanel())

	m.SelectRole(entity.RoleClient)
	s := m.Snapshot()
	assert.Nil(t, s.Editing)
	assert.False(t, s.AddPanelOpen)
	assert.Equal(t, entity.PageWelcome, s.Page, "chef_tools ya no es accesible para el cliente")
}

func TestNavigate_GuardasPorRol(t *testing.T) {
	m := menu.NewModel()
	assert.ErrorIs(t, m.Navigate(entity.PageChefTools), domain.ErrForbidden)
	assert.ErrorIs(t, m.Navigate(entity.PageGuestFilter), domain.ErrForbidden)
	assert.Equal(t, entity.PageWelcome, m.Page())

	m.SelectRole(entity.RoleClient)
	assert.NoError(t, m.Navigate(entity.PageGuestFilter))
	assert.ErrorIs(t, m.Navigate(entity.PageChefTools), domain.ErrForbidden)
	assert.Equal(t, entity.PageGuestFilter, m.Page())
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestStartEdit_SoloChef(t *testing.T) {
	m := newClient(t)
	assert.ErrorIs(t, m.StartEdit(entity.CourseMain, "m1"), domain.ErrForbidden)
	assert.Nil(t, m.Snapshot().Editing)
}

func TestStartEdit_PlatoInexistente(t *testing.T) {
	m := newChef(t)
	assert.ErrorIs(t, m.StartEdit(entity.CourseMain, "s1"), domain.ErrNotFound)
	assert.Nil(t, m.Snapshot().Editing)
}

func TestStartEdit_UnaSolaEdicionActiva(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m1"))
	require.NoError(t, m.StartEdit(entity.CourseDesserts, "d2"))

	s := m.Snapshot()
	require.NotNil(t, s.Editing)
	assert.True(t, s.IsEditing(entity.CourseDesserts, "d2"))
	assert.False(t, s.IsEditing(entity.CourseMain, "m1"))
	assert.Equal(t, "Ice Cream", s.Editing.Name)
	assert.Equal(t, "79", s.Editing.Price)
}

func TestSaveEdit_AplicaBorrador(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m2"))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldName, "  Pasta Pesto "))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldPrice, "135.5"))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldDescription, ""))
	require.NoError(t, m.SaveEdit())

	s := m.Snapshot()
	assert.Nil(t, s.Editing)
	it, ok := s.Menu.Find(entity.CourseMain, "m2")
	require.True(t, ok)
	assert.Equal(t, "Pasta Pesto", it.Name)
	assert.Equal(t, "135.5", it.Price.String())
	assert.Equal(t, "", it.Description)
	assert.Equal(t, []string{"m1", "m2", "m3", "m4"}, itemIDs(s.Menu.Items(entity.CourseMain)))
}

func TestSaveEdit_PrecioVacioGuardaCero(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseStarters, "s1"))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldPrice, ""))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldName, "   "))
	require.NoError(t, m.SaveEdit())

	it, _ := m.Snapshot().Menu.Find(entity.CourseStarters, "s1")
	assert.True(t, it.Price.IsZero())
	assert.Equal(t, "Garlic Bread", it.Name, "un nombre vacío no reemplaza al actual")
}

func TestSaveEdit_PrecioIlegibleONegativoGuardaCero(t *testing.T) {
	for _, in := range []string{"abc", "-12"} {
		m := newChef(t)
		require.NoError(t, m.StartEdit(entity.CourseStarters, "s2"))
		require.NoError(t, m.UpdateEditBuffer(menu.FieldPrice, in))
		require.NoError(t, m.SaveEdit())
		it, _ := m.Snapshot().Menu.Find(entity.CourseStarters, "s2")
		assert.True(t, it.Price.IsZero(), "entrada %q", in)
	}
}

func TestSaveEdit_SinBorradorNoHaceNada(t *testing.T) {
	m := newChef(t)
	before := m.Snapshot()
	assert.ErrorIs(t, m.SaveEdit(), domain.ErrPreconditionNotMet)
	assert.ErrorIs(t, m.UpdateEditBuffer(menu.FieldName, "x"), domain.ErrPreconditionNotMet)
	assert.Equal(t, before.Menu.All(), m.Snapshot().Menu.All())
}

func TestCancelEdit_NoTocaLaCarta(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m1"))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldName, "Otro"))
	m.CancelEdit()

	s := m.Snapshot()
	assert.Nil(t, s.Editing)
	it, _ := s.Menu.Find(entity.CourseMain, "m1")
	assert.Equal(t, "Grilled Chicken", it.Name)
}

func TestUpdateEditBuffer_CampoInvalido(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m1"))
	assert.ErrorIs(t, m.UpdateEditBuffer(menu.FieldCourse, "desserts"), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveItem_EliminaExactamenteUno(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.RemoveItem(entity.CourseDesserts, "d2"))
	assert.Equal(t, []string{"d1", "d3", "d4"}, itemIDs(m.Snapshot().Menu.Items(entity.CourseDesserts)))

	require.NoError(t, m.RemoveItem(entity.CourseDesserts, "zz"))
	assert.Equal(t, []string{"d1", "d3", "d4"}, itemIDs(m.Snapshot().Menu.Items(entity.CourseDesserts)))
}

func TestRemoveItem_SoloChef(t *testing.T) {
	m := newClient(t)
	assert.ErrorIs(t, m.RemoveItem(entity.CourseDesserts, "d2"), domain.ErrForbidden)
	assert.Len(t, m.Snapshot().Menu.Items(entity.CourseDesserts), 4)
}

func TestRemoveItem_CascadaAlPedido(t *testing.T) {
	m := newClient(t)
	_, err := m.ToggleOrderItem("m1")
	require.NoError(t, err)
	_, err = m.ToggleOrderItem("d1")
	require.NoError(t, err)

	m.SelectRole(entity.RoleChef)
	require.NoError(t, m.RemoveItem(entity.CourseMain, "m1"))

	s := m.Snapshot()
	require.Len(t, s.Order, 1)
	assert.Equal(t, "d1", s.Order[0].Item.ID)
	assert.True(t, decimal.NewFromInt(90).Equal(s.OrderTotal))
}

func TestRemoveItem_SinCascadaConservaLaCopia(t *testing.T) {
	m := newClient(t, menu.WithCascadeRemovals(false))
	_, err := m.ToggleOrderItem("m1")
	require.NoError(t, err)

	m.SelectRole(entity.RoleChef)
	require.NoError(t, m.RemoveItem(entity.CourseMain, "m1"))
	assert.True(t, m.Snapshot().IsSelected("m1"))
}

func TestRemoveItem_CierraLaEdicionDelPlato(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m3"))
	require.NoError(t, m.RemoveItem(entity.CourseMain, "m3"))
	assert.Nil(t, m.Snapshot().Editing)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMenuItem_Ok(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.OpenAddPanel())
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldName, "Salad"))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldPrice, "50"))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldCourse, "starters"))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldDescription, "  Green  "))

	it, err := m.AddMenuItem()
	require.NoError(t, err)

	s := m.Snapshot()
	starters := s.Menu.Items(entity.CourseStarters)
	require.Len(t, starters, 5)
	last := starters[4]
	assert.Equal(t, it, last)
	assert.Equal(t, "Salad", last.Name)
	assert.Equal(t, "Green", last.Description)
	assert.True(t, decimal.NewFromFloat(50.0).Equal(last.Price))
	assert.False(t, last.HasImage())
	assert.False(t, s.AddPanelOpen)
	assert.Equal(t, menu.NewItemBuffer{Course: entity.CourseStarters}, s.NewItem)
}

func TestAddMenuItem_PrecioInvalidoNoCambiaLaCarta(t *testing.T) {
	for _, price := range []string{"", "abc"} {
		m := newChef(t)
		require.NoError(t, m.OpenAddPanel())
		require.NoError(t, m.UpdateNewItemBuffer(menu.FieldName, "Salad"))
		require.NoError(t, m.UpdateNewItemBuffer(menu.FieldPrice, price))

		_, err := m.AddMenuItem()
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio %q", price)

		s := m.Snapshot()
		assert.Len(t, s.Menu.Items(entity.CourseStarters), 4)
		assert.True(t, s.AddPanelOpen, "el panel sigue abierto tras un rechazo")
		assert.Equal(t, "Salad", s.NewItem.Name, "el borrador se conserva")
	}
}

func TestAddMenuItem_NombreVacio(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldPrice, "10"))
	_, err := m.AddMenuItem()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddMenuItem_IDsDistintosDentroDelCurso(t *testing.T) {
	// El generador repite "s1" (ya existe en entradas) antes de dar uno libre.
	ids := []string{"s1", "s1", "s9"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	m := newChef(t, menu.WithIDGenerator(gen))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldName, "Tapas"))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldPrice, "20"))

	it, err := m.AddMenuItem()
	require.NoError(t, err)
	assert.Equal(t, "s9", it.ID)
}

func TestAddMenuItem_CursoDestino(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldName, "Flan"))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldPrice, "33.25"))
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldCourse, "desserts"))
	_, err := m.AddMenuItem()
	require.NoError(t, err)

	desserts := m.Snapshot().Menu.Items(entity.CourseDesserts)
	require.Len(t, desserts, 5)
	assert.Equal(t, "Flan", desserts[4].Name)
}

func TestUpdateNewItemBuffer_CursoInvalido(t *testing.T) {
	m := newChef(t)
	assert.ErrorIs(t, m.UpdateNewItemBuffer(menu.FieldCourse, "drinks"), domain.ErrInvalidInput)
	assert.Equal(t, entity.CourseStarters, m.Snapshot().NewItem.Course)
}

func TestAddPanel_SoloChef(t *testing.T) {
	m := newClient(t)
	assert.ErrorIs(t, m.OpenAddPanel(), domain.ErrForbidden)
	assert.ErrorIs(t, m.UpdateNewItemBuffer(menu.FieldName, "x"), domain.ErrForbidden)
	_, err := m.AddMenuItem()
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAddPanel_CerrarConservaBorrador(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.OpenAddPanel())
	require.NoError(t, m.UpdateNewItemBuffer(menu.FieldName, "Tiramisu"))
	m.CloseAddPanel()
	require.NoError(t, m.OpenAddPanel())
	assert.Equal(t, "Tiramisu", m.Snapshot().NewItem.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedido y checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleOrderItem_DobleAplicacionEsIdempotente(t *testing.T) {
	m := newClient(t)
	_, err := m.ToggleOrderItem("s1")
	require.NoError(t, err)
	before := m.Snapshot().Order

	added, err := m.ToggleOrderItem("m2")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = m.ToggleOrderItem("m2")
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, before, m.Snapshot().Order)
}

func TestToggleOrderItem_PlatoInexistente(t *testing.T) {
	m := newClient(t)
	_, err := m.ToggleOrderItem("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, m.Snapshot().Order)
}

func TestToggleOrderItem_OrdenDeInsercion(t *testing.T) {
	m := newClient(t)
	for _, id := range []string{"d1", "s1", "m1"} {
		_, err := m.ToggleOrderItem(id)
		require.NoError(t, err)
	}
	var got []string
	for _, l := range m.Snapshot().Order {
		got = append(got, l.Item.ID)
	}
	assert.Equal(t, []string{"d1", "s1", "m1"}, got)
}

func TestConfirmCheckout_TotalYVaciado(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newClient(t, menu.WithCatalog(twoStarters()), menu.WithClock(func() time.Time { return at }))
	_, _ = m.ToggleOrderItem("s1")
	_, _ = m.ToggleOrderItem("s2")

	r, err := m.ConfirmCheckout()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(143).Equal(r.Total))
	assert.Equal(t, "0001", r.Number)
	assert.Equal(t, at, r.ConfirmedAt)
	assert.Len(t, r.Lines, 2)

	s := m.Snapshot()
	assert.Empty(t, s.Order)
	assert.Equal(t, "✅ Payment of R143 confirmed! Thank you.", s.Confirmation)
	require.NotNil(t, s.LastReceipt)
	assert.Equal(t, r.Number, s.LastReceipt.Number)
}

func TestConfirmCheckout_PedidoVacioNoSobrescribe(t *testing.T) {
	m := newClient(t, menu.WithCatalog(twoStarters()))
	_, _ = m.ToggleOrderItem("s1")
	_, err := m.ConfirmCheckout()
	require.NoError(t, err)
	msg := m.Snapshot().Confirmation

	_, err = m.ConfirmCheckout()
	assert.ErrorIs(t, err, domain.ErrPreconditionNotMet)
	assert.Equal(t, msg, m.Snapshot().Confirmation)
}

func TestConfirmCheckout_MensajeHastaLaSiguienteNavegacion(t *testing.T) {
	m := newClient(t, menu.WithCurrencySymbol("$"))
	require.NoError(t, m.Navigate(entity.PageCheckout))
	_, _ = m.ToggleOrderItem("d3")
	_, err := m.ConfirmCheckout()
	require.NoError(t, err)
	assert.Equal(t, "✅ Payment of $72 confirmed! Thank you.", m.Snapshot().Confirmation)

	require.NoError(t, m.Navigate(entity.PageStarters))
	assert.Empty(t, m.Snapshot().Confirmation)
}

func TestConfirmCheckout_UsaLaCopiaDelPedido(t *testing.T) {
	m := newClient(t)
	_, _ = m.ToggleOrderItem("m4")

	m.SelectRole(entity.RoleChef)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m4"))
	require.NoError(t, m.UpdateEditBuffer(menu.FieldPrice, "999"))
	require.NoError(t, m.SaveEdit())

	r, err := m.ConfirmCheckout()
	require.NoError(t, err)
	assert.Equal(t, "110", r.Total.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestAverage(t *testing.T) {
	m := menu.NewModel(menu.WithCatalog(twoStarters()))
	assert.Equal(t, "71.50", m.Average(entity.CourseStarters))
	assert.Equal(t, "0.00", m.Average(entity.CourseMain))
	assert.Equal(t, "0.00", m.Average(entity.CourseDesserts))
}

func TestFilteredItems(t *testing.T) {
	m := newClient(t)
	m.SetFilter(entity.FilterFor(entity.CourseMain))

	var got []string
	for _, ci := range m.FilteredItems() {
		assert.Equal(t, entity.CourseMain, ci.Course)
		got = append(got, ci.ID)
	}
	assert.Equal(t, itemIDs(m.Snapshot().Menu.Items(entity.CourseMain)), got)

	m.SetFilter(entity.FilterAll)
	all := m.FilteredItems()
	require.Len(t, all, 12)
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "m1", all[4].ID)
	assert.Equal(t, "d4", all[11].ID)
}

func TestSnapshot_EsInmutable(t *testing.T) {
	m := newChef(t)
	require.NoError(t, m.StartEdit(entity.CourseMain, "m1"))
	s := m.Snapshot()
	s.Editing.Name = "cambiado"
	s.Menu.Remove(entity.CourseMain, "m1")

	again := m.Snapshot()
	assert.Equal(t, "Grilled Chicken", again.Editing.Name)
	assert.True(t, again.Menu.Contains(entity.CourseMain, "m1"))
}
