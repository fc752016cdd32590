package entity

// Menu carta con tres listas ordenadas, una por curso.
// Los IDs son únicos dentro de un curso, no globalmente: toda búsqueda va por curso + id.
type Menu struct {
	courses map[Course][]MenuItem
}

// NewMenu construye la carta copiando las listas recibidas.
func NewMenu(starters, main, desserts []MenuItem) Menu {
	return Menu{courses: map[Course][]MenuItem{
		CourseStarters: cloneItems(starters),
		CourseMain:     cloneItems(main),
		CourseDesserts: cloneItems(desserts),
	}}
}

// Items devuelve una copia de la lista del curso, en orden original.
func (m Menu) Items(c Course) []MenuItem {
	return cloneItems(m.courses[c])
}

// All concatena entradas ++ fuertes ++ postres, cada plato con su curso.
func (m Menu) All() []CourseItem {
	out := make([]CourseItem, 0, m.Len())
	for _, c := range AllCourses() {
		for _, it := range m.courses[c] {
			out = append(out, CourseItem{Course: c, MenuItem: it})
		}
	}
	return out
}

// Len número total de platos.
func (m Menu) Len() int {
	n := 0
	for _, items := range m.courses {
		n += len(items)
	}
	return n
}

// Find busca un plato por curso + id.
func (m Menu) Find(c Course, id string) (MenuItem, bool) {
	if i := m.index(c, id); i >= 0 {
		return m.courses[c][i], true
	}
	return MenuItem{}, false
}

// FindAny busca el primer plato con ese id recorriendo los cursos en orden.
func (m Menu) FindAny(id string) (CourseItem, bool) {
	for _, c := range AllCourses() {
		if it, ok := m.Find(c, id); ok {
			return CourseItem{Course: c, MenuItem: it}, true
		}
	}
	return CourseItem{}, false
}

// Contains indica si el curso tiene un plato con ese id.
func (m Menu) Contains(c Course, id string) bool {
	return m.index(c, id) >= 0
}

// Replace sustituye el plato con el mismo id dentro del curso. false si no existe.
func (m *Menu) Replace(c Course, item MenuItem) bool {
	i := m.index(c, item.ID)
	if i < 0 {
		return false
	}
	m.courses[c][i] = item
	return true
}

// Remove elimina exactamente un plato del curso. false si no existe (no-op).
func (m *Menu) Remove(c Course, id string) bool {
	i := m.index(c, id)
	if i < 0 {
		return false
	}
	items := m.courses[c]
	m.courses[c] = append(items[:i:i], items[i+1:]...)
	return true
}

// Append agrega el plato al final del curso.
func (m *Menu) Append(c Course, item MenuItem) {
	if m.courses == nil {
		m.courses = make(map[Course][]MenuItem, 3)
	}
	m.courses[c] = append(m.courses[c], item)
}

// Clone copia profunda de la carta.
func (m Menu) Clone() Menu {
	return NewMenu(m.courses[CourseStarters], m.courses[CourseMain], m.courses[CourseDesserts])
}

func (m Menu) index(c Course, id string) int {
	for i, it := range m.courses[c] {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}
