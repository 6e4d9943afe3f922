package command

import "sort"

// Handler serves every action within one namespace.
type Handler interface {
	// HandleAction executes the action and returns a result.
	HandleAction(action Action, ctx *Context) Result

	// CanHandle reports whether this handler serves the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix, like "fold".
	Namespace() string
}

// HandlerFunc is the signature of a single action's implementation.
type HandlerFunc func(action Action, ctx *Context) Result

// Base is a namespace handler backed by a map of action functions.
type Base struct {
	namespace string
	actions   map[string]HandlerFunc
}

// NewBase creates an empty handler for a namespace.
func NewBase(namespace string) *Base {
	return &Base{
		namespace: namespace,
		actions:   make(map[string]HandlerFunc),
	}
}

// Register adds an action implementation. Registration happens at
// construction time; Base is read-only afterwards.
func (b *Base) Register(actionName string, fn HandlerFunc) {
	b.actions[actionName] = fn
}

// Namespace implements Handler.
func (b *Base) Namespace() string {
	return b.namespace
}

// CanHandle implements Handler.
func (b *Base) CanHandle(actionName string) bool {
	_, ok := b.actions[actionName]
	return ok
}

// HandleAction implements Handler.
func (b *Base) HandleAction(action Action, ctx *Context) Result {
	fn, ok := b.actions[action.Name]
	if !ok {
		return Errorf("unknown action in namespace %s: %s", b.namespace, action.Name)
	}
	return fn(action, ctx)
}

// Actions returns the registered action names, sorted.
func (b *Base) Actions() []string {
	names := make([]string, 0, len(b.actions))
	for name := range b.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
