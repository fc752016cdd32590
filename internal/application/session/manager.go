// Package session aloja un modelo de carta por sesión y serializa sus comandos.
//
// Cada sesión tiene su propio mutex: un comando se aplica completo antes de aceptar el
// siguiente, igual que el bucle de eventos de una interfaz. Las sesiones inactivas
// expiran tras el TTL configurado.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/domain"
)

// ErrUnknownSession la sesión no existe o ya expiró.
var ErrUnknownSession = fmt.Errorf("%w: sesión inexistente o expirada", domain.ErrNotFound)

// Command comando aplicado al modelo de una sesión.
type Command func(m *menu.Model) error

// Config opciones del gestor de sesiones.
type Config struct {
	TTL          time.Duration // inactividad máxima; 0 = sin expiración
	ModelOptions []menu.Option // opciones para cada modelo nuevo
}

type entry struct {
	mu       sync.Mutex
	model    *menu.Model
	lastSeen time.Time
}

// Manager registro en memoria de sesiones activas.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

// NewManager construye el gestor.
func NewManager(cfg Config, log zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		cfg:      cfg,
		log:      log.With().Str("component", "session").Logger(),
		now:      time.Now,
	}
}

// Create abre una sesión nueva con la carta semilla y devuelve su id y estado inicial.
func (m *Manager) Create() (string, menu.State) {
	id := uuid.NewString()
	e := &entry{model: menu.NewModel(m.cfg.ModelOptions...), lastSeen: m.now()}

	m.mu.Lock()
	m.sessions[id] = e
	total := len(m.sessions)
	m.mu.Unlock()

	m.log.Info().Str("session_id", id).Int("active", total).Msg("sesión creada")
	return id, e.model.Snapshot()
}

// Do aplica cmd a la sesión y devuelve el estado resultante. Si el comando no aplica el
// estado devuelto es el mismo de antes y el error explica por qué.
func (m *Manager) Do(id string, cmd Command) (menu.State, error) {
	e, err := m.lookup(id)
	if err != nil {
		return menu.State{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = m.now()
	if cmdErr := cmd(e.model); cmdErr != nil {
		m.log.Debug().Err(cmdErr).Str("session_id", id).Msg("comando rechazado")
		return e.model.Snapshot(), cmdErr
	}
	return e.model.Snapshot(), nil
}

// View ejecuta una lectura sobre el modelo sin tocar el estado.
func (m *Manager) View(id string, fn func(m *menu.Model)) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = m.now()
	fn(e.model)
	return nil
}

// State devuelve el estado actual de la sesión.
func (m *Manager) State(id string) (menu.State, error) {
	var s menu.State
	err := m.View(id, func(mdl *menu.Model) { s = mdl.Snapshot() })
	return s, err
}

// End cierra la sesión. false si no existía.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		m.log.Info().Str("session_id", id).Msg("sesión cerrada")
	}
	return ok
}

// Len número de sesiones activas.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep elimina las sesiones inactivas más allá del TTL y devuelve cuántas quitó.
func (m *Manager) Sweep() int {
	if m.cfg.TTL <= 0 {
		return 0
	}
	limit := m.now().Add(-m.cfg.TTL)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := e.lastSeen.Before(limit)
		e.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info().Int("expired", removed).Int("active", len(m.sessions)).Msg("sesiones expiradas")
	}
	return removed
}

// Run barre sesiones cada interval hasta que ctx se cancele.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrUnknownSession
	}
	return e, nil
}
