package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain/entity"
	pricing "github.com/jhoicas/foodhub/internal/domain/menu"
)

// Model adaptador bubbletea sobre el modelo de carta. Cada tecla se traduce a un
// comando; la vista se arma siempre desde Snapshot.
type Model struct {
	app    *menu.Model
	styles Styles
	log    zerolog.Logger

	cursor int
	form   *form
	status string // aviso del último comando rechazado
	width  int
}

// New construye la interfaz sobre app.
func New(app *menu.Model, styles Styles, log zerolog.Logger) Model {
	return Model{app: app, styles: styles, log: log}
}

// Init no arranca comandos.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update procesa teclas y redimensionado.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	page := m.app.Page()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right":
		m.stepPage(1)
		return m, nil
	case "shift+tab", "left":
		m.stepPage(-1)
		return m, nil
	case "w":
		m.navigate(entity.PageWelcome)
		return m, nil
	case "up", "k":
		if page != entity.PageWelcome {
			m.moveCursor(-1)
			return m, nil
		}
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	}

	switch page {
	case entity.PageWelcome:
		m.welcomeKeys(msg.String())
	case entity.PageCheckout:
		m.checkoutKeys(msg.String())
	case entity.PageGuestFilter:
		if msg.String() == "f" {
			m.cycleFilter()
			return m, nil
		}
		m.listKeys(msg.String())
	case entity.PageChefTools:
		if msg.String() == "a" {
			m.openAddForm()
			return m, nil
		}
		m.listKeys(msg.String())
	default:
		m.listKeys(msg.String())
	}
	return m, nil
}

// welcomeKeys elegir rol lleva a la página de inicio de ese rol.
func (m *Model) welcomeKeys(key string) {
	switch key {
	case "c":
		m.app.SelectRole(entity.RoleClient)
		m.navigate(entity.PageStarters)
	case "k":
		m.app.SelectRole(entity.RoleChef)
		m.navigate(entity.PageChefTools)
	case "u":
		m.app.SelectRole(entity.RoleUnset)
	}
}

func (m *Model) checkoutKeys(key string) {
	switch key {
	case "enter":
		r, err := m.app.ConfirmCheckout()
		if m.reject(err) {
			return
		}
		m.cursor = 0
		m.log.Info().Str("receipt", r.Number).Str("total", r.Total.String()).Msg("checkout confirmado")
	case " ", "x":
		lines := m.app.Snapshot().Order
		if m.cursor < len(lines) {
			_, err := m.app.ToggleOrderItem(lines[m.cursor].Item.ID)
			m.reject(err)
			m.clampCursor()
		}
	}
}

// listKeys teclas comunes a las páginas que listan platos.
func (m *Model) listKeys(key string) {
	items := m.visibleItems()
	if m.cursor >= len(items) {
		return
	}
	ci := items[m.cursor]
	switch key {
	case " ", "enter":
		_, err := m.app.ToggleOrderItem(ci.ID)
		m.reject(err)
	case "e":
		if m.reject(m.app.StartEdit(ci.Course, ci.ID)) {
			return
		}
		if s := m.app.Snapshot(); s.Editing != nil {
			m.form = newEditForm(*s.Editing)
		}
	case "x":
		if m.reject(m.app.RemoveItem(ci.Course, ci.ID)) {
			return
		}
		m.clampCursor()
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		if f.kind == formEdit {
			m.app.CancelEdit()
		} else {
			m.app.CloseAddPanel()
		}
		m.form = nil
		return m, nil
	case "tab", "down":
		f.focusOn(f.focus + 1)
		return m, nil
	case "shift+tab", "up":
		f.focusOn(f.focus - 1)
		return m, nil
	case "ctrl+s", "enter":
		m.submitForm()
		return m, nil
	case "left", "right":
		if f.field() == menu.FieldCourse {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.reject(m.app.UpdateNewItemBuffer(menu.FieldCourse, f.cycleCourse(step)))
			return m, nil
		}
	}
	if f.field() == menu.FieldCourse {
		return m, nil
	}

	cmd := f.update(msg)
	var err error
	if f.kind == formEdit {
		err = m.app.UpdateEditBuffer(f.field(), f.value())
	} else {
		err = m.app.UpdateNewItemBuffer(f.field(), f.value())
	}
	m.reject(err)
	return m, cmd
}

func (m *Model) submitForm() {
	if m.form.kind == formEdit {
		if m.reject(m.app.SaveEdit()) {
			return
		}
		m.form = nil
		return
	}
	it, err := m.app.AddMenuItem()
	if m.reject(err) {
		return
	}
	m.form = nil
	m.log.Info().Str("id", it.ID).Str("name", it.Name).Msg("plato agregado")
}

func (m *Model) openAddForm() {
	if m.reject(m.app.OpenAddPanel()) {
		return
	}
	m.form = newAddForm(m.app.Snapshot().NewItem)
}

func (m *Model) navigate(p entity.Page) {
	if m.reject(m.app.Navigate(p)) {
		return
	}
	m.cursor = 0
}

// stepPage recorre las páginas permitidas para el rol actual.
func (m *Model) stepPage(step int) {
	var pages []entity.Page
	cur := 0
	for _, p := range entity.AllPages() {
		if !p.AllowedFor(m.app.Role()) {
			continue
		}
		if p == m.app.Page() {
			cur = len(pages)
		}
		pages = append(pages, p)
	}
	n := len(pages)
	m.navigate(pages[((cur+step)%n+n)%n])
}

func (m *Model) cycleFilter() {
	filters := []entity.CourseFilter{entity.FilterAll}
	for _, c := range entity.AllCourses() {
		filters = append(filters, entity.FilterFor(c))
	}
	cur := m.app.Snapshot().Filter
	for i, f := range filters {
		if f == cur {
			m.app.SetFilter(filters[(i+1)%len(filters)])
			break
		}
	}
	m.cursor = 0
}

func (m *Model) moveCursor(step int) {
	m.cursor += step
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.visibleItems())
	if m.app.Page() == entity.PageCheckout {
		n = len(m.app.Snapshot().Order)
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleItems platos listados en la página actual, en orden de carta.
func (m *Model) visibleItems() []entity.CourseItem {
	s := m.app.Snapshot()
	switch p := m.app.Page(); p {
	case entity.PageGuestFilter:
		return s.FilteredItems
	case entity.PageChefTools:
		return s.Menu.All()
	default:
		c, ok := p.Course()
		if !ok {
			return nil
		}
		items := s.Menu.Items(c)
		out := make([]entity.CourseItem, 0, len(items))
		for _, it := range items {
			out = append(out, entity.CourseItem{Course: c, MenuItem: it})
		}
		return out
	}
}

// reject deja el aviso en la barra de estado. Devuelve true si hubo error.
func (m *Model) reject(err error) bool {
	if err == nil {
		return false
	}
	m.status = err.Error()
	m.log.Debug().Err(err).Str("page", string(m.app.Page())).Msg("comando rechazado")
	return true
}

// ── Vista ────────────────────────────────────────────────────────────────────

// View arma la pantalla desde la foto del modelo.
func (m Model) View() string {
	s := m.app.Snapshot()
	var b strings.Builder

	b.WriteString(m.tabs(s))
	b.WriteString("\n\n")

	switch s.Page {
	case entity.PageWelcome:
		b.WriteString(m.welcomeView(s))
	case entity.PageCheckout:
		b.WriteString(m.checkoutView(s))
	case entity.PageGuestFilter:
		b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s (%d)", s.Filter.Label(), len(s.FilteredItems))))
		b.WriteString("\n")
		b.WriteString(m.listView(s, s.FilteredItems, true))
	case entity.PageChefTools:
		b.WriteString(m.chefView(s))
	default:
		c, _ := s.Page.Course()
		b.WriteString(m.styles.Title.Render(c.Label()))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Average price: " + m.app.Currency() + s.Averages[c]))
		b.WriteString("\n\n")
		b.WriteString(m.listView(s, m.visibleItems(), false))
	}

	if m.form != nil {
		title := "Edit item"
		if m.form.kind == formAdd {
			title = "Add new item"
		}
		b.WriteString(m.styles.Panel.Render(title + "\n\n" + m.form.view()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.Help.Render(m.help(s)))
	return b.String()
}

func (m Model) tabs(s menu.State) string {
	var parts []string
	for _, p := range entity.AllPages() {
		if !p.AllowedFor(s.Role) {
			continue
		}
		label := p.Label()
		if p == entity.PageCheckout && len(s.Order) > 0 {
			label = fmt.Sprintf("%s (%d)", label, len(s.Order))
		}
		if p == s.Page {
			parts = append(parts, m.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, m.styles.Tab.Render(label))
		}
	}
	role := string(s.Role)
	if role == "" {
		role = "no role"
	}
	return strings.Join(parts, " ") + "  " + m.styles.Muted.Render("["+role+"]")
}

func (m Model) welcomeView(s menu.State) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome to FoodHub"))
	b.WriteString("\n")
	b.WriteString("Average Prices:\n")
	for _, c := range entity.AllCourses() {
		fmt.Fprintf(&b, "  %s: %s%s\n", c.Label(), m.app.Currency(), s.Averages[c])
	}
	b.WriteString("\n")
	b.WriteString("Who are you?\n\n")
	b.WriteString(m.roleOption("c", "Client", s.Role == entity.RoleClient))
	b.WriteString(m.roleOption("k", "Chef", s.Role == entity.RoleChef))
	return b.String()
}

func (m Model) roleOption(key, label string, active bool) string {
	line := fmt.Sprintf("  [%s] %s", key, label)
	if active {
		return m.styles.Selected.Render(line+"  ✓") + "\n"
	}
	return line + "\n"
}

func (m Model) listView(s menu.State, items []entity.CourseItem, showCourse bool) string {
	if len(items) == 0 {
		return m.styles.Muted.Render("No items.") + "\n"
	}
	var b strings.Builder
	for i, ci := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		check := "[ ]"
		if s.IsSelected(ci.ID) {
			check = m.styles.Selected.Render("[x]")
		}
		name := ci.Name
		if showCourse {
			name = fmt.Sprintf("%s (%s)", name, ci.Course.Label())
		}
		if s.IsEditing(ci.Course, ci.ID) {
			name += m.styles.Muted.Render(" (editing)")
		}
		fmt.Fprintf(&b, "%s%s %-36s %s\n", cursor, check, name,
			m.styles.Price.Render(pricing.FormatPrice(m.app.Currency(), ci.Price)))
		if ci.Description != "" {
			b.WriteString("      " + m.styles.Muted.Render(ci.Description) + "\n")
		}
	}
	return b.String()
}

func (m Model) checkoutView(s menu.State) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Checkout"))
	b.WriteString("\n")
	if s.Confirmation != "" {
		b.WriteString(m.styles.Success.Render(s.Confirmation))
		b.WriteString("\n")
	}
	if len(s.Order) == 0 {
		if s.Confirmation == "" {
			b.WriteString(m.styles.Muted.Render("Your order is empty.") + "\n")
		}
		return b.String()
	}
	for i, l := range s.Order {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-40s %s\n", cursor, l.Item.Name,
			m.styles.Price.Render(pricing.FormatPrice(m.app.Currency(), l.Item.Price)))
	}
	fmt.Fprintf(&b, "\n  %-40s %s\n", "Total", m.styles.Price.Render(pricing.FormatPrice(m.app.Currency(), s.OrderTotal)))
	return b.String()
}

func (m Model) chefView(s menu.State) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Chef Tools"))
	b.WriteString("\n")
	for _, c := range entity.AllCourses() {
		fmt.Fprintf(&b, "%-10s avg %s%s (%d items)\n", c.Label(), m.app.Currency(), s.Averages[c], len(s.Menu.Items(c)))
	}
	b.WriteString("\n")
	b.WriteString(m.listView(s, s.Menu.All(), true))
	return b.String()
}

func (m Model) help(s menu.State) string {
	if m.form != nil {
		if m.form.kind == formAdd {
			return "tab next field • ←/→ course • enter add • esc close"
		}
		return "tab next field • enter save • esc cancel"
	}
	base := "tab/shift+tab page • w welcome • q quit"
	switch s.Page {
	case entity.PageWelcome:
		return "c client • k chef • u clear role • " + base
	case entity.PageCheckout:
		return "enter confirm & pay • x remove • " + base
	case entity.PageGuestFilter:
		return "f filter • space toggle • " + base
	case entity.PageChefTools:
		return "a add item • e edit • x remove • space toggle • " + base
	}
	if s.Role.IsChef() {
		return "space toggle • e edit • x remove • " + base
	}
	return "space toggle • " + base
}
