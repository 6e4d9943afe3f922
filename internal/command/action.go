package command

import "strings"

// Args carries action-specific arguments.
type Args map[string]any

// Get retrieves a raw argument value.
func (a Args) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a[key]
	return v, ok
}

// GetInt retrieves an int argument, 0 when absent or mistyped.
func (a Args) GetInt(key string) int {
	if v, ok := a.Get(key); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// GetBool retrieves a bool argument, false when absent or mistyped.
func (a Args) GetBool(key string) bool {
	if v, ok := a.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetString retrieves a string argument, "" when absent or mistyped.
func (a Args) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Action is a command to be executed.
type Action struct {
	// Name is the command identifier, like "fold.toggle" or
	// "cursor.moveDown".
	Name string

	// Args contains command-specific arguments.
	Args Args

	// Count is the repeat count. Zero means unspecified; handlers treat
	// it as 1.
	Count int
}

// New creates an action by name.
func New(name string) Action {
	return Action{Name: name}
}

// WithCount returns a copy of the action with the given repeat count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// WithArg returns a copy of the action with one argument added.
func (a Action) WithArg(key string, value any) Action {
	args := make(Args, len(a.Args)+1)
	for k, v := range a.Args {
		args[k] = v
	}
	args[key] = value
	a.Args = args
	return a
}

// Repeat returns the effective repeat count, at least 1.
func (a Action) Repeat() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}

// Namespace returns the prefix before the first dot of an action name,
// or "" when the name has none.
func Namespace(actionName string) string {
	if i := strings.IndexByte(actionName, '.'); i > 0 {
		return actionName[:i]
	}
	return ""
}
