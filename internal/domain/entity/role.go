package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/foodhub/internal/domain"
)

// Role rol elegido en la pantalla de bienvenida.
type Role string

// Roles válidos. RoleUnset es el estado inicial, antes de elegir.
const (
	RoleUnset  Role = ""
	RoleClient Role = "client"
	RoleChef   Role = "chef"
)

// ParseRole convierte un string en Role ("" se acepta como volver a sin rol).
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUnset:
		return RoleUnset, nil
	case RoleClient:
		return RoleClient, nil
	case RoleChef:
		return RoleChef, nil
	}
	return "", fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, s)
}

// IsChef atajo para las guardas de comandos de cocina.
func (r Role) IsChef() bool { return r == RoleChef }
