package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/foodhub/internal/domain"
)

// Course identifica una de las tres secciones fijas de la carta.
type Course string

// Cursos válidos, en el orden en que se muestran.
const (
	CourseStarters Course = "starters"
	CourseMain     Course = "main"
	CourseDesserts Course = "desserts"
)

// AllCourses devuelve los cursos en orden de carta (entradas, fuertes, postres).
func AllCourses() []Course {
	return []Course{CourseStarters, CourseMain, CourseDesserts}
}

// ParseCourse convierte un string en Course. Cualquier otro valor es ErrInvalidInput.
// Devuelve siempre la constante, nunca un trozo de s.
func ParseCourse(s string) (Course, error) {
	in := Course(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range AllCourses() {
		if c == in {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: curso desconocido %q", domain.ErrInvalidInput, s)
}

// Valid indica si c pertenece a la enumeración cerrada.
func (c Course) Valid() bool {
	switch c {
	case CourseStarters, CourseMain, CourseDesserts:
		return true
	}
	return false
}

// Label nombre visible del curso ("Starters", "Main", "Desserts").
func (c Course) Label() string {
	return cases.Title(language.English).String(string(c))
}

// CourseFilter selector del filtro de la carta: "all" o un curso.
type CourseFilter string

// FilterAll muestra los tres cursos concatenados.
const FilterAll CourseFilter = "all"

// FilterFor construye el filtro de un único curso.
func FilterFor(c Course) CourseFilter { return CourseFilter(c) }

// ParseCourseFilter acepta "all" o el nombre de un curso.
func ParseCourseFilter(s string) (CourseFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(FilterAll)) {
		return FilterAll, nil
	}
	c, err := ParseCourse(s)
	if err != nil {
		return "", err
	}
	return FilterFor(c), nil
}

// Course devuelve el curso filtrado; ok es false para FilterAll.
func (f CourseFilter) Course() (c Course, ok bool) {
	if f == FilterAll {
		return "", false
	}
	return Course(f), Course(f).Valid()
}

// Label nombre visible del filtro.
func (f CourseFilter) Label() string {
	if c, ok := f.Course(); ok {
		return c.Label()
	}
	return "All Items"
}
