package command

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Dispatcher routes actions to namespace handlers.
type Dispatcher struct {
	mu         sync.RWMutex
	namespaces map[string]Handler
	log        zerolog.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		namespaces: make(map[string]Handler),
		log:        log.With().Str("component", "dispatch").Logger(),
	}
}

// Register adds a namespace handler. Registering a namespace twice
// replaces the earlier handler.
func (d *Dispatcher) Register(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.namespaces[h.Namespace()] = h
}

// Dispatch routes the action to its namespace handler.
func (d *Dispatcher) Dispatch(action Action, ctx *Context) Result {
	d.mu.RLock()
	h, ok := d.namespaces[Namespace(action.Name)]
	d.mu.RUnlock()

	if !ok || !h.CanHandle(action.Name) {
		d.log.Debug().Str("action", action.Name).Msg("no handler for action")
		return Errorf("no handler for action %s", action.Name)
	}

	result := h.HandleAction(action, ctx)

	evt := d.log.Debug().Str("action", action.Name).Str("status", result.Status.String())
	if result.Error != nil {
		evt = evt.Err(result.Error)
	}
	evt.Msg("dispatched")
	return result
}

// Has reports whether an action has a handler.
func (d *Dispatcher) Has(actionName string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.namespaces[Namespace(actionName)]
	return ok && h.CanHandle(actionName)
}

// Namespaces returns the registered namespace names, sorted.
func (d *Dispatcher) Namespaces() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.namespaces))
	for name := range d.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
