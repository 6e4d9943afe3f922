package fold

import (
	"context"
	"time"

	"github.com/bep/debounce"
	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/event"
	"github.com/dshills/notefold/internal/event/events"
)

// OpenFoldDelay is how long after a document opens the automatic fold
// waits before running, giving the view time to settle.
const OpenFoldDelay = 100 * time.Millisecond

// SettingsFunc supplies the current fold settings at decision time, so a
// trigger created at startup follows later configuration changes.
type SettingsFunc func() Settings

// ViewFunc resolves the view automatic folding runs against. ok is false
// when no view is active.
type ViewFunc func() (View, bool)

// Trigger folds documents automatically when they are opened and the
// configured method applies to them. The fold is debounced: rapid
// successive opens coalesce into one run against the then-active view.
type Trigger struct {
	bus      event.Bus
	folder   *Folder
	settings SettingsFunc
	view     ViewFunc
	delay    time.Duration
	schedule func(func())
	log      zerolog.Logger
	sub      *event.Subscription
}

// TriggerOption configures a Trigger.
type TriggerOption func(*Trigger)

// WithDelay overrides the post-open delay.
func WithDelay(d time.Duration) TriggerOption {
	return func(t *Trigger) {
		if d > 0 {
			t.delay = d
		}
	}
}

// NewTrigger creates a trigger that watches the bus for opened
// documents.
func NewTrigger(bus event.Bus, folder *Folder, settings SettingsFunc, view ViewFunc, log zerolog.Logger, opts ...TriggerOption) *Trigger {
	t := &Trigger{
		bus:      bus,
		folder:   folder,
		settings: settings,
		view:     view,
		delay:    OpenFoldDelay,
		log:      log.With().Str("component", "foldtrigger").Logger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.schedule = debounce.New(t.delay)
	return t
}

// Start subscribes the trigger to document-opened events.
func (t *Trigger) Start() error {
	sub, err := t.bus.SubscribeFunc(events.TopicDocumentOpened, t.handleOpened)
	if err != nil {
		return err
	}
	t.sub = sub
	return nil
}

// Stop detaches the trigger from the bus. A fold that is already
// scheduled may still run.
func (t *Trigger) Stop() {
	if t.sub != nil {
		_ = t.bus.Unsubscribe(t.sub)
		t.sub = nil
	}
}

// handleOpened gates the opened document and schedules the automatic
// fold.
func (t *Trigger) handleOpened(_ context.Context, raw any) error {
	e, ok := event.As[events.DocumentOpened](raw)
	if !ok {
		return nil
	}

	s := t.settings()
	if !s.ShouldFold(e.Payload.Tags) {
		t.log.Debug().
			Str("path", e.Payload.Path).
			Str("method", s.Method.String()).
			Msg("automatic fold not applicable")
		return nil
	}

	t.log.Debug().Str("path", e.Payload.Path).Msg("automatic fold scheduled")
	t.schedule(t.run)
	return nil
}

// run folds whatever view is active once the delay elapses. With no
// active view it does nothing.
func (t *Trigger) run() {
	v, ok := t.view()
	if !ok {
		return
	}
	applied := t.folder.FoldDeep(v, t.settings())
	t.log.Debug().Int("applied", applied).Msg("automatic fold complete")
}
