package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain/entity"
)

type formKind int

const (
	formEdit formKind = iota
	formAdd
)

// form campos de texto de un borrador. El borrador real vive en el modelo de carta;
// cada tecla se copia allí.
type form struct {
	kind   formKind
	fields []menu.Field
	inputs []textinput.Model
	focus  int
}

func newInput(label, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = label + ": "
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(value)
	return ti
}

func newEditForm(b menu.EditBuffer) *form {
	f := &form{
		kind:   formEdit,
		fields: []menu.Field{menu.FieldName, menu.FieldPrice, menu.FieldDescription},
		inputs: []textinput.Model{
			newInput("Name", b.Name),
			newInput("Price", b.Price),
			newInput("Description", b.Description),
		},
	}
	f.focusOn(0)
	return f
}

func newAddForm(b menu.NewItemBuffer) *form {
	course := newInput("Course", string(b.Course))
	course.Placeholder = "←/→"
	f := &form{
		kind:   formAdd,
		fields: []menu.Field{menu.FieldName, menu.FieldDescription, menu.FieldCourse, menu.FieldPrice},
		inputs: []textinput.Model{
			newInput("Name", b.Name),
			newInput("Description", b.Description),
			course,
			newInput("Price", b.Price),
		},
	}
	f.focusOn(0)
	return f
}

func (f *form) focusOn(i int) {
	n := len(f.inputs)
	i = ((i % n) + n) % n
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	f.inputs[i].Focus()
}

func (f *form) field() menu.Field { return f.fields[f.focus] }

func (f *form) value() string { return f.inputs[f.focus].Value() }

// cycleCourse mueve el curso del formulario de alta. El curso no se escribe a mano.
func (f *form) cycleCourse(step int) string {
	courses := entity.AllCourses()
	cur := 0
	for i, c := range courses {
		if string(c) == f.value() {
			cur = i
		}
	}
	next := courses[((cur+step)%len(courses)+len(courses))%len(courses)]
	f.inputs[f.focus].SetValue(string(next))
	return string(next)
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	out := ""
	for i := range f.inputs {
		out += f.inputs[i].View() + "\n"
	}
	return out
}
