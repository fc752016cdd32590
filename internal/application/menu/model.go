// Package menu implementa el modelo de estado de la carta y el pedido: dueño único de
// la carta, el pedido, los borradores de edición/alta y los selectores de navegación.
//
// Flujo unidireccional: comando → mutación → Snapshot → render. Cada comando es
// síncrono y atómico; si no aplica devuelve un error de dominio y deja el estado intacto.
// El modelo no es seguro para uso concurrente: quien lo aloje debe serializar los comandos.
package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/foodhub/internal/domain"
	"github.com/jhoicas/foodhub/internal/domain/entity"
	pricing "github.com/jhoicas/foodhub/internal/domain/menu"
)

// maxIDAttempts tope de reintentos al generar un id que no choque dentro del curso.
const maxIDAttempts = 8

// Model estado de una sesión de la aplicación.
type Model struct {
	page   entity.Page
	role   entity.Role
	filter entity.CourseFilter

	menu  entity.Menu
	order entity.Order

	editing      *EditBuffer
	addPanelOpen bool
	newItem      NewItemBuffer

	confirmation string
	lastReceipt  *entity.Receipt
	receiptSeq   int

	newID           IDGenerator
	now             func() time.Time
	currency        string
	cascadeRemovals bool
}

// NewModel crea el modelo con la carta semilla, en la página de bienvenida y sin rol.
func NewModel(opts ...Option) *Model {
	m := &Model{
		page:            entity.PageWelcome,
		role:            entity.RoleUnset,
		filter:          entity.FilterAll,
		menu:            DefaultCatalog(),
		newItem:         emptyNewItem(),
		newID:           defaultIDGenerator,
		now:             time.Now,
		currency:        "R",
		cascadeRemovals: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ── Selectores ───────────────────────────────────────────────────────────────

// SelectRole fija el rol. No toca carta ni pedido.
// Al dejar de ser chef se descartan la edición activa y el panel de alta; si la página
// actual queda vedada para el nuevo rol se vuelve a la bienvenida.
func (m *Model) SelectRole(r entity.Role) {
	if m.role.IsChef() && !r.IsChef() {
		m.editing = nil
		m.addPanelOpen = false
	}
	m.role = r
	if !m.page.AllowedFor(r) {
		m.page = entity.PageWelcome
	}
}

// Navigate cambia de página y borra el mensaje de confirmación.
// Las páginas de chef y de cliente se rechazan si el rol no coincide.
func (m *Model) Navigate(p entity.Page) error {
	if !p.AllowedFor(m.role) {
		return fmt.Errorf("%w: la página %s requiere rol %s", domain.ErrForbidden, p, p.RequiredRole())
	}
	m.page = p
	m.confirmation = ""
	return nil
}

// SetFilter fija el filtro de la carta. Siempre legal.
func (m *Model) SetFilter(f entity.CourseFilter) {
	m.filter = f
}

// ── Edición (solo chef) ──────────────────────────────────────────────────────

// StartEdit abre el borrador de edición del plato curso + id, reemplazando cualquier
// edición previa.
func (m *Model) StartEdit(c entity.Course, id string) error {
	if err := m.requireChef(); err != nil {
		return err
	}
	it, ok := m.menu.Find(c, id)
	if !ok {
		return fmt.Errorf("%w: plato %s/%s", domain.ErrNotFound, c, id)
	}
	m.editing = newEditBuffer(c, it)
	return nil
}

// UpdateEditBuffer modifica un campo del borrador activo.
func (m *Model) UpdateEditBuffer(f Field, value string) error {
	if m.editing == nil {
		return fmt.Errorf("%w: no hay edición activa", domain.ErrPreconditionNotMet)
	}
	return m.editing.set(f, value)
}

// SaveEdit confirma el borrador: nombre solo si no queda vacío, precio con la política
// de edición (ilegible → 0) y descripción tal cual. Cierra la edición, también cuando
// el plato ya no existe.
func (m *Model) SaveEdit() error {
	if m.editing == nil {
		return fmt.Errorf("%w: no hay edición activa", domain.ErrPreconditionNotMet)
	}
	if err := m.requireChef(); err != nil {
		return err
	}
	b := m.editing
	m.editing = nil
	it, ok := m.menu.Find(b.Course, b.ID)
	if !ok {
		return fmt.Errorf("%w: plato %s/%s ya no está en la carta", domain.ErrNotFound, b.Course, b.ID)
	}
	if name := strings.TrimSpace(b.Name); name != "" {
		it.Name = name
	}
	it.Price = pricing.ParseEditPrice(b.Price)
	it.Description = b.Description
	m.menu.Replace(b.Course, it)
	return nil
}

// CancelEdit descarta el borrador sin tocar la carta.
func (m *Model) CancelEdit() {
	m.editing = nil
}

// RemoveItem elimina el plato curso + id. Un id inexistente no cambia nada.
// Con la política de cascada activa también lo saca del pedido.
func (m *Model) RemoveItem(c entity.Course, id string) error {
	if err := m.requireChef(); err != nil {
		return err
	}
	if !m.menu.Remove(c, id) {
		return nil
	}
	if m.editing != nil && m.editing.Course == c && m.editing.ID == id {
		m.editing = nil
	}
	if m.cascadeRemovals {
		m.order.RemoveItem(c, id)
	}
	return nil
}

// ── Alta (solo chef) ─────────────────────────────────────────────────────────

// OpenAddPanel muestra el panel de alta conservando el borrador.
func (m *Model) OpenAddPanel() error {
	if err := m.requireChef(); err != nil {
		return err
	}
	m.addPanelOpen = true
	return nil
}

// CloseAddPanel oculta el panel de alta conservando el borrador.
func (m *Model) CloseAddPanel() {
	m.addPanelOpen = false
}

// UpdateNewItemBuffer modifica un campo del borrador de alta.
func (m *Model) UpdateNewItemBuffer(f Field, value string) error {
	if err := m.requireChef(); err != nil {
		return err
	}
	return m.newItem.set(f, value)
}

// AddMenuItem agrega el borrador al final del curso elegido. Nombre o precio vacíos,
// o precio ilegible, se rechazan sin tocar nada (más estricto que SaveEdit).
// Devuelve el plato creado.
func (m *Model) AddMenuItem() (entity.MenuItem, error) {
	if err := m.requireChef(); err != nil {
		return entity.MenuItem{}, err
	}
	b := m.newItem
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return entity.MenuItem{}, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	price, err := pricing.ParseNewPrice(b.Price)
	if err != nil {
		return entity.MenuItem{}, err
	}
	id, err := m.uniqueID(b.Course)
	if err != nil {
		return entity.MenuItem{}, err
	}
	it := entity.MenuItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(b.Description),
	}
	m.menu.Append(b.Course, it)
	m.newItem = emptyNewItem()
	m.addPanelOpen = false
	return it, nil
}

func (m *Model) uniqueID(c entity.Course) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := m.newID()
		if id != "" && !m.menu.Contains(c, id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no se pudo generar un id libre en %s", domain.ErrPreconditionNotMet, c)
}

// ── Pedido ───────────────────────────────────────────────────────────────────

// ToggleOrderItem quita el plato del pedido si ya estaba; si no, agrega una copia del
// primer plato de la carta con ese id (entradas, fuertes, postres).
// Devuelve true si el plato quedó en el pedido.
func (m *Model) ToggleOrderItem(id string) (bool, error) {
	if m.order.RemoveID(id) {
		return false, nil
	}
	ci, ok := m.menu.FindAny(id)
	if !ok {
		return false, fmt.Errorf("%w: plato %s", domain.ErrNotFound, id)
	}
	m.order.Toggle(ci.Course, ci.MenuItem)
	return true, nil
}

// ConfirmCheckout cierra el pedido: calcula el total, deja el mensaje de confirmación
// (visible hasta la próxima navegación) y vacía el pedido. Con pedido vacío no hace nada.
func (m *Model) ConfirmCheckout() (entity.Receipt, error) {
	if m.order.IsEmpty() {
		return entity.Receipt{}, fmt.Errorf("%w: el pedido está vacío", domain.ErrPreconditionNotMet)
	}
	lines := m.order.Lines()
	total := pricing.Total(lines)
	m.receiptSeq++
	r := entity.Receipt{
		Number:      fmt.Sprintf("%04d", m.receiptSeq),
		Lines:       lines,
		Total:       total,
		Message:     fmt.Sprintf("✅ Payment of %s confirmed! Thank you.", pricing.FormatPrice(m.currency, total)),
		ConfirmedAt: m.now(),
	}
	m.confirmation = r.Message
	m.lastReceipt = &r
	m.order.Clear()
	return cloneReceipt(r), nil
}

// ── Consultas ────────────────────────────────────────────────────────────────

// Average precio medio del curso con dos decimales ("0.00" si está vacío).
func (m *Model) Average(c entity.Course) string {
	return pricing.Average(m.menu.Items(c))
}

// Averages precio medio de los tres cursos.
func (m *Model) Averages() map[entity.Course]string {
	out := make(map[entity.Course]string, 3)
	for _, c := range entity.AllCourses() {
		out[c] = m.Average(c)
	}
	return out
}

// FilteredItems platos visibles con el filtro activo, en orden de carta.
func (m *Model) FilteredItems() []entity.CourseItem {
	c, ok := m.filter.Course()
	if !ok {
		return m.menu.All()
	}
	items := m.menu.Items(c)
	out := make([]entity.CourseItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.CourseItem{Course: c, MenuItem: it})
	}
	return out
}

// Role rol activo.
func (m *Model) Role() entity.Role { return m.role }

// Page página activa.
func (m *Model) Page() entity.Page { return m.page }

// Currency símbolo de moneda con que se formatean los precios.
func (m *Model) Currency() string { return m.currency }

// LastReceipt comprobante del último checkout confirmado.
func (m *Model) LastReceipt() (entity.Receipt, bool) {
	if m.lastReceipt == nil {
		return entity.Receipt{}, false
	}
	return cloneReceipt(*m.lastReceipt), true
}

// Snapshot copia profunda del estado completo.
func (m *Model) Snapshot() State {
	s := State{
		Page:          m.page,
		Role:          m.role,
		Filter:        m.filter,
		Menu:          m.menu.Clone(),
		Order:         m.order.Lines(),
		OrderTotal:    m.order.Total(),
		AddPanelOpen:  m.addPanelOpen,
		NewItem:       m.newItem,
		Confirmation:  m.confirmation,
		Averages:      m.Averages(),
		FilteredItems: m.FilteredItems(),
	}
	if m.editing != nil {
		e := *m.editing
		s.Editing = &e
	}
	if r, ok := m.LastReceipt(); ok {
		s.LastReceipt = &r
	}
	return s
}

func (m *Model) requireChef() error {
	if !m.role.IsChef() {
		return fmt.Errorf("%w: acción exclusiva del chef", domain.ErrForbidden)
	}
	return nil
}

func cloneReceipt(r entity.Receipt) entity.Receipt {
	lines := make([]entity.OrderLine, len(r.Lines))
	copy(lines, r.Lines)
	r.Lines = lines
	return r
}
