package menu

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// IDGenerator genera ids para los platos nuevos.
type IDGenerator func() string

// Option configura un Model en NewModel.
type Option func(*Model)

// WithIDGenerator reemplaza el generador de ids (por defecto uuid v4).
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Model) { m.newID = gen }
}

// WithClock reemplaza el reloj usado para fechar los comprobantes.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithCatalog arranca la sesión con otra carta en lugar de DefaultCatalog.
func WithCatalog(menu entity.Menu) Option {
	return func(m *Model) { m.menu = menu.Clone() }
}

// WithCurrencySymbol símbolo usado en el mensaje de confirmación (por defecto "R").
func WithCurrencySymbol(symbol string) Option {
	return func(m *Model) { m.currency = symbol }
}

// WithCascadeRemovals decide si quitar un plato de la carta lo quita también del pedido.
// Activo por defecto; desactivarlo reproduce el comportamiento antiguo en que el
// pedido conservaba la copia del plato eliminado.
func WithCascadeRemovals(enabled bool) Option {
	return func(m *Model) { m.cascadeRemovals = enabled }
}

func defaultIDGenerator() string { return uuid.NewString() }
