package entity

import "github.com/shopspring/decimal"

// MenuItem plato de la carta. Solo cambia mediante el comando de edición del chef.
type MenuItem struct {
	ID          string          // único dentro de su curso
	Name        string
	Price       decimal.Decimal // nunca negativo
	Description string          // puede ir vacío
	Image       string          // referencia al asset; vacío = sin imagen
}

// HasImage indica si el plato tiene imagen asociada.
func (i MenuItem) HasImage() bool { return i.Image != "" }

// CourseItem plato etiquetado con el curso al que pertenece (vista filtrada).
type CourseItem struct {
	Course Course
	MenuItem
}
