package menu

import (
	"fmt"

	"github.com/jhoicas/foodhub/internal/domain"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// Field campo editable de un borrador.
type Field string

// Campos de los borradores de edición y alta.
const (
	FieldName        Field = "name"
	FieldPrice       Field = "price"
	FieldDescription Field = "description"
	FieldCourse      Field = "course" // solo en el borrador de alta
)

// ParseField convierte el nombre recibido de la capa de presentación.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldPrice, FieldDescription, FieldCourse:
		return f, nil
	}
	return "", fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, s)
}

// EditBuffer borrador de la única edición activa. El precio se guarda como texto
// tal como lo tecleó el chef; se interpreta al guardar.
type EditBuffer struct {
	Course      entity.Course
	ID          string
	Name        string
	Price       string
	Description string
}

func newEditBuffer(c entity.Course, it entity.MenuItem) *EditBuffer {
	return &EditBuffer{
		Course:      c,
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price.String(),
		Description: it.Description,
	}
}

func (b *EditBuffer) set(f Field, value string) error {
	switch f {
	case FieldName:
		b.Name = value
	case FieldPrice:
		b.Price = value
	case FieldDescription:
		b.Description = value
	default:
		return fmt.Errorf("%w: el campo %q no se edita", domain.ErrInvalidInput, f)
	}
	return nil
}

// NewItemBuffer borrador del plato en alta; vive mientras el panel de alta exista.
type NewItemBuffer struct {
	Name        string
	Description string
	Course      entity.Course
	Price       string
}

func emptyNewItem() NewItemBuffer {
	return NewItemBuffer{Course: entity.CourseStarters}
}

func (b *NewItemBuffer) set(f Field, value string) error {
	switch f {
	case FieldName:
		b.Name = value
	case FieldDescription:
		b.Description = value
	case FieldPrice:
		b.Price = value
	case FieldCourse:
		c, err := entity.ParseCourse(value)
		if err != nil {
			return err
		}
		b.Course = c
	default:
		return fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, f)
	}
	return nil
}
