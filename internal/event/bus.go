package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// DeliveryMode specifies how events are delivered to a subscription.
type DeliveryMode int

const (
	// DeliverySync executes the handler synchronously in the publisher's
	// goroutine. Use for critical paths where ordering matters.
	DeliverySync DeliveryMode = iota

	// DeliveryAsync queues the event for delivery from the worker pool.
	// Use for handlers that must not block the publisher.
	DeliveryAsync
)

// String returns a human-readable delivery mode name.
func (m DeliveryMode) String() string {
	switch m {
	case DeliverySync:
		return "sync"
	case DeliveryAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Stats contains event bus statistics.
type Stats struct {
	// EventsPublished is the total number of events published.
	EventsPublished uint64

	// EventsDelivered is the total number of successful handler runs.
	EventsDelivered uint64

	// EventsDropped is the number of events dropped (queue full).
	EventsDropped uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// ActiveSubscribers is the current number of active subscriptions.
	ActiveSubscribers int

	// QueueDepth is the current async queue depth.
	QueueDepth int
}

// Bus is the central event bus interface.
type Bus interface {
	// Publish queues the event for delivery to async subscriptions.
	Publish(ctx context.Context, event any) error
	// PublishSync delivers the event to matching sync subscriptions
	// before returning.
	PublishSync(ctx context.Context, event any) error

	// Subscribe registers a handler for a topic pattern. Delivery is
	// synchronous unless WithAsync is given.
	Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (*Subscription, error)
	SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error)
	Unsubscribe(sub *Subscription) error

	// Lifecycle
	Start() error
	Stop(ctx context.Context) error

	// Status
	Stats() Stats
	IsRunning() bool
}

// Subscription is a registered handler for a topic pattern.
type Subscription struct {
	id      string
	pattern Topic
	handler Handler
	mode    DeliveryMode
	active  atomic.Bool
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Pattern returns the subscribed topic pattern.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// Mode returns the subscription's delivery mode.
func (s *Subscription) Mode() DeliveryMode {
	return s.mode
}

// Cancel deactivates the subscription. The subscription stays registered
// until Unsubscribe removes it, but no longer receives events.
func (s *Subscription) Cancel() {
	s.active.Store(false)
}

// IsActive reports whether the subscription still receives events.
func (s *Subscription) IsActive() bool {
	return s.active.Load()
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// WithAsync marks the subscription for delivery from the worker pool.
func WithAsync() SubscriptionOption {
	return func(s *Subscription) {
		s.mode = DeliveryAsync
	}
}

// WithSync marks the subscription for synchronous delivery (the default).
func WithSync() SubscriptionOption {
	return func(s *Subscription) {
		s.mode = DeliverySync
	}
}

type busConfig struct {
	queueSize int
	workers   int
}

func defaultBusConfig() busConfig {
	return busConfig{
		queueSize: 256,
		workers:   2,
	}
}

// BusOption configures the bus.
type BusOption func(*busConfig)

// WithQueueSize sets the async delivery queue capacity.
func WithQueueSize(n int) BusOption {
	return func(c *busConfig) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// WithWorkers sets the number of async delivery workers.
func WithWorkers(n int) BusOption {
	return func(c *busConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// delivery is one queued async handler invocation.
type delivery struct {
	ctx   context.Context
	event any
	sub   *Subscription
}

// bus is the default Bus implementation.
type bus struct {
	mu   sync.RWMutex
	subs []*Subscription

	config busConfig
	queue  chan delivery
	quit   chan struct{}
	wg     sync.WaitGroup

	running atomic.Bool

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	eventsDropped   atomic.Uint64
	handlerErrors   atomic.Uint64
	handlerPanics   atomic.Uint64
}

// NewBus creates a new event bus with the given options.
func NewBus(opts ...BusOption) Bus {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &bus{
		config: config,
		queue:  make(chan delivery, config.queueSize),
	}
}

// Start starts the async delivery workers.
func (b *bus) Start() error {
	if b.running.Load() {
		return ErrBusAlreadyRunning
	}
	b.quit = make(chan struct{})
	for i := 0; i < b.config.workers; i++ {
		b.wg.Add(1)
		go b.worker()
	}
	b.running.Store(true)
	return nil
}

// Stop stops the bus gracefully. It waits for queued async events to be
// processed or until the context is cancelled.
func (b *bus) Stop(ctx context.Context) error {
	if !b.running.Swap(false) {
		return ErrBusNotRunning
	}
	close(b.quit)

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning returns true if the bus is running.
func (b *bus) IsRunning() bool {
	return b.running.Load()
}

func (b *bus) worker() {
	defer b.wg.Done()
	for {
		select {
		case d := <-b.queue:
			b.deliver(d.ctx, d.event, d.sub)
		case <-b.quit:
			// Drain what is already queued, then exit.
			for {
				select {
				case d := <-b.queue:
					b.deliver(d.ctx, d.event, d.sub)
				default:
					return
				}
			}
		}
	}
}

// deliver runs one handler with panic isolation.
func (b *bus) deliver(ctx context.Context, event any, sub *Subscription) {
	defer func() {
		if recover() != nil {
			b.handlerPanics.Add(1)
		}
	}()

	if !sub.IsActive() {
		return
	}
	if err := sub.handler.Handle(ctx, event); err != nil {
		b.handlerErrors.Add(1)
		return
	}
	b.eventsDelivered.Add(1)
}

// PublishSync delivers the event to matching sync subscriptions in the
// caller's goroutine.
func (b *bus) PublishSync(ctx context.Context, event any) error {
	if !b.running.Load() {
		return ErrBusNotRunning
	}

	eventTopic, ok := extractTopic(event)
	if !ok {
		return ErrInvalidEvent
	}

	matched := b.match(eventTopic, DeliverySync)
	if len(matched) == 0 {
		return nil
	}

	b.eventsPublished.Add(1)
	for _, sub := range matched {
		b.deliver(ctx, event, sub)
	}
	return nil
}

// Publish queues the event for delivery to matching async subscriptions.
func (b *bus) Publish(ctx context.Context, event any) error {
	if !b.running.Load() {
		return ErrBusNotRunning
	}

	eventTopic, ok := extractTopic(event)
	if !ok {
		return ErrInvalidEvent
	}

	matched := b.match(eventTopic, DeliveryAsync)
	if len(matched) == 0 {
		return nil
	}

	b.eventsPublished.Add(1)
	for _, sub := range matched {
		select {
		case b.queue <- delivery{ctx: ctx, event: event, sub: sub}:
		default:
			// Queue full. Dropping keeps publishers non-blocking.
			b.eventsDropped.Add(1)
		}
	}
	return nil
}

// match returns active subscriptions of the given mode whose pattern
// matches the topic.
func (b *bus) match(t Topic, mode DeliveryMode) []*Subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var matched []*Subscription
	for _, sub := range b.subs {
		if sub.mode != mode || !sub.IsActive() {
			continue
		}
		if t.Match(sub.pattern) {
			matched = append(matched, sub)
		}
	}
	return matched
}

// Subscribe creates a new subscription for the given topic pattern.
// This method is safe to call concurrently.
func (b *bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if pattern == "" {
		return nil, ErrInvalidTopic
	}

	sub := &Subscription{
		id:      uuid.NewString(),
		pattern: pattern,
		handler: handler,
	}
	for _, opt := range opts {
		opt(sub)
	}
	sub.active.Store(true)

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function
// handler.
func (b *bus) SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe removes a subscription.
// This method is safe to call concurrently.
func (b *bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	sub.Cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Stats returns current bus statistics.
func (b *bus) Stats() Stats {
	b.mu.RLock()
	active := 0
	for _, s := range b.subs {
		if s.IsActive() {
			active++
		}
	}
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		EventsDropped:     b.eventsDropped.Load(),
		HandlerErrors:     b.handlerErrors.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: active,
		QueueDepth:        len(b.queue),
	}
}

// extractTopic extracts the topic from an event.
func extractTopic(event any) (Topic, bool) {
	tp, ok := event.(TopicProvider)
	if !ok {
		return "", false
	}
	return tp.EventTopic(), true
}
