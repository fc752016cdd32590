package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Ningún comando del modelo es fatal: cuando uno de estos errores se devuelve el estado
// queda intacto y el error solo sirve como aviso para la capa de presentación.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acceso denegado para el rol actual")
	ErrPreconditionNotMet = errors.New("precondición no cumplida")
)
