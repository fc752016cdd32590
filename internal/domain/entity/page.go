package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/foodhub/internal/domain"
)

// Page página activa de la navegación.
type Page string

// Páginas de la aplicación.
const (
	PageWelcome     Page = "welcome"
	PageStarters    Page = "starters"
	PageMain        Page = "main"
	PageDesserts    Page = "desserts"
	PageCheckout    Page = "checkout"
	PageChefTools   Page = "chef_tools"
	PageGuestFilter Page = "guest_filter"
)

// AllPages devuelve las páginas en el orden del menú de navegación.
func AllPages() []Page {
	return []Page{PageWelcome, PageStarters, PageMain, PageDesserts, PageCheckout, PageGuestFilter, PageChefTools}
}

// ParsePage convierte un string en Page.
func ParsePage(s string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPages() {
		if p == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: página desconocida %q", domain.ErrInvalidInput, s)
}

// PageForCourse página de listado de un curso.
func PageForCourse(c Course) Page { return Page(c) }

// Course devuelve el curso que lista la página, si es una página de curso.
func (p Page) Course() (Course, bool) {
	c := Course(p)
	return c, c.Valid()
}

// RequiredRole rol exigido para entrar a la página; RoleUnset = sin restricción.
func (p Page) RequiredRole() Role {
	switch p {
	case PageChefTools:
		return RoleChef
	case PageGuestFilter:
		return RoleClient
	}
	return RoleUnset
}

// AllowedFor indica si el rol puede navegar a la página.
func (p Page) AllowedFor(r Role) bool {
	req := p.RequiredRole()
	return req == RoleUnset || req == r
}

// Label texto del enlace de navegación.
func (p Page) Label() string {
	switch p {
	case PageMain:
		return "Main Course"
	case PageGuestFilter:
		return "Filter Menu"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(p), "_", " "))
}
