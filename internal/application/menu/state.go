package menu

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// State foto inmutable del modelo tras cada comando. La capa de presentación
// solo la lee para renderizar; modificarla no afecta al modelo.
type State struct {
	Page          entity.Page
	Role          entity.Role
	Filter        entity.CourseFilter
	Menu          entity.Menu
	Order         []entity.OrderLine
	OrderTotal    decimal.Decimal
	Editing       *EditBuffer // nil si no hay edición activa
	AddPanelOpen  bool
	NewItem       NewItemBuffer
	Confirmation  string
	LastReceipt   *entity.Receipt
	Averages      map[entity.Course]string
	FilteredItems []entity.CourseItem
}

// IsSelected indica si el plato con ese id está en el pedido.
func (s State) IsSelected(id string) bool {
	for _, l := range s.Order {
		if l.Item.ID == id {
			return true
		}
	}
	return false
}

// IsEditing indica si el plato curso + id es el que está en edición.
func (s State) IsEditing(c entity.Course, id string) bool {
	return s.Editing != nil && s.Editing.Course == c && s.Editing.ID == id
}
