package entity

import "github.com/shopspring/decimal"

// OrderLine plato seleccionado: copia del plato al momento de agregarlo más su curso.
type OrderLine struct {
	Course Course
	Item   MenuItem
}

// Order pedido en curso. Conjunto por id de plato, guardado en orden de inserción.
type Order struct {
	lines []OrderLine
}

// Lines copia de las líneas en orden de inserción.
func (o Order) Lines() []OrderLine {
	out := make([]OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Len número de platos en el pedido.
func (o Order) Len() int { return len(o.lines) }

// IsEmpty indica si el pedido no tiene platos.
func (o Order) IsEmpty() bool { return len(o.lines) == 0 }

// Contains indica si el id de plato ya está en el pedido.
func (o Order) Contains(id string) bool {
	return o.index(id) >= 0
}

// Toggle quita el plato si ya estaba (por id) o lo agrega al final.
// Devuelve true si el plato quedó en el pedido.
func (o *Order) Toggle(c Course, item MenuItem) bool {
	if i := o.index(item.ID); i >= 0 {
		o.removeAt(i)
		return false
	}
	o.lines = append(o.lines, OrderLine{Course: c, Item: item})
	return true
}

// RemoveID quita la línea con ese id de plato, si existe.
func (o *Order) RemoveID(id string) bool {
	i := o.index(id)
	if i < 0 {
		return false
	}
	o.removeAt(i)
	return true
}

// RemoveItem quita la línea de ese curso + id, si existe.
func (o *Order) RemoveItem(c Course, id string) bool {
	for i, l := range o.lines {
		if l.Course == c && l.Item.ID == id {
			o.removeAt(i)
			return true
		}
	}
	return false
}

// Total suma de los precios de las líneas.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Item.Price)
	}
	return total
}

// Clear vacía el pedido.
func (o *Order) Clear() { o.lines = nil }

func (o Order) index(id string) int {
	for i, l := range o.lines {
		if l.Item.ID == id {
			return i
		}
	}
	return -1
}

func (o *Order) removeAt(i int) {
	o.lines = append(o.lines[:i:i], o.lines[i+1:]...)
}
