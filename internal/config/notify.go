package config

import "sync"

// ChangeType says what kind of config change happened.
type ChangeType int

const (
	// ChangeSet indicates a single key was set.
	ChangeSet ChangeType = iota

	// ChangeReload indicates the whole file was reloaded.
	ChangeReload
)

// String returns the change type name.
func (t ChangeType) String() string {
	switch t {
	case ChangeSet:
		return "set"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change describes one configuration change.
type Change struct {
	// Key is the dot-separated key that changed. Empty for reloads.
	Key string

	// Type is the kind of change.
	Type ChangeType

	// OldValue is the previous value, nil for reloads.
	OldValue any

	// NewValue is the new value, nil for reloads.
	NewValue any
}

// Observer is called when configuration changes.
type Observer func(change Change)

// ObserverHandle identifies an active observer subscription.
type ObserverHandle struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe detaches the observer.
func (h *ObserverHandle) Unsubscribe() {
	if h.notifier != nil {
		h.notifier.unsubscribe(h.id)
	}
}

// Notifier fans config changes out to observers. Delivery is synchronous
// and runs outside the notifier's lock, so observers may subscribe and
// unsubscribe freely.
type Notifier struct {
	mu     sync.RWMutex
	global map[uint64]Observer
	keyed  map[string]map[uint64]Observer
	nextID uint64
	closed bool
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		global: make(map[uint64]Observer),
		keyed:  make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for every change.
func (n *Notifier) Subscribe(observer Observer) *ObserverHandle {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.global[id] = observer
	return &ObserverHandle{id: id, notifier: n}
}

// SubscribeKey registers an observer for one key or key prefix.
// Subscribing to "fold" receives changes to "fold.level". Reloads reach
// every observer.
func (n *Notifier) SubscribeKey(key string, observer Observer) *ObserverHandle {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	if n.keyed[key] == nil {
		n.keyed[key] = make(map[uint64]Observer)
	}
	n.keyed[key][id] = observer
	return &ObserverHandle{id: id, notifier: n}
}

// NotifySet delivers a single-key change.
func (n *Notifier) NotifySet(key string, oldValue, newValue any) {
	n.deliver(Change{Key: key, Type: ChangeSet, OldValue: oldValue, NewValue: newValue})
}

// NotifyReload delivers a reload to every observer.
func (n *Notifier) NotifyReload() {
	n.deliver(Change{Type: ChangeReload})
}

// Close drops all observers. Later notifications go nowhere.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.global = make(map[uint64]Observer)
	n.keyed = make(map[string]map[uint64]Observer)
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.global, id)
	for key, observers := range n.keyed {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.keyed, key)
		}
	}
}

func (n *Notifier) deliver(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	observers := make([]Observer, 0, len(n.global))
	for _, obs := range n.global {
		observers = append(observers, obs)
	}
	for key, keyed := range n.keyed {
		if change.Type == ChangeReload || key == change.Key || isKeyPrefix(key, change.Key) {
			for _, obs := range keyed {
				observers = append(observers, obs)
			}
		}
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

// isKeyPrefix reports whether prefix is a dotted prefix of key, so
// "fold" covers "fold.level" but not "folder.x".
func isKeyPrefix(prefix, key string) bool {
	return len(key) > len(prefix) && key[:len(prefix)] == prefix && key[len(prefix)] == '.'
}
