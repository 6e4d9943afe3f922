package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/command"
	"github.com/dshills/notefold/internal/command/handlers/cursor"
	"github.com/dshills/notefold/internal/command/handlers/folding"
	"github.com/dshills/notefold/internal/config"
	"github.com/dshills/notefold/internal/event"
	"github.com/dshills/notefold/internal/fold"
	"github.com/dshills/notefold/internal/input"
	"github.com/dshills/notefold/internal/renderer"
	"github.com/dshills/notefold/internal/session"
)

// Options configures the application.
type Options struct {
	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// FoldLevel overrides the configured fold level when non-negative.
	FoldLevel int

	// Files are documents to open on startup.
	Files []string
}

// Application is the central coordinator. It owns the component
// lifecycles and the main event loop.
type Application struct {
	opts Options
	log  zerolog.Logger

	bus        event.Bus
	cfg        *config.Config
	watcher    *config.Watcher
	session    *session.Session
	trigger    *fold.Trigger
	dispatcher *command.Dispatcher
	keymap     *input.Keymap

	backend  renderer.Backend
	renderer *renderer.Renderer
	viewport *renderer.Viewport

	// Event loop state, touched only from the loop goroutine.
	message string
	count   int

	logClose  io.Closer
	running   atomic.Bool
	closeOnce sync.Once
}

// New creates an application and initializes its components.
func New(opts Options) (*Application, error) {
	a := &Application{opts: opts}
	if err := a.bootstrap(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// bootstrap initializes the components in dependency order.
func (a *Application) bootstrap() error {
	// 1. Configuration
	var err error
	if a.opts.ConfigPath != "" {
		a.cfg, err = config.Load(a.opts.ConfigPath)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// 2. Logging
	a.log, a.logClose, err = setupLogging(a.cfg.Logging(), a.opts.LogLevel)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	a.log.Info().Str("config", a.cfg.Path()).Msg("starting")

	// 3. Event bus
	a.bus = event.NewBus()
	if err := a.bus.Start(); err != nil {
		return &InitError{Component: "event bus", Err: err}
	}

	// 4. Session
	a.session = session.New(a.bus, a.log)

	// 5. Command dispatcher
	a.dispatcher = command.NewDispatcher(a.log)
	a.dispatcher.Register(folding.New())
	a.dispatcher.Register(cursor.New())
	a.dispatcher.Register(a.appHandler())

	// 6. Key bindings
	a.keymap = input.Default()
	if err := a.keymap.Merge(a.cfg.Keys()); err != nil {
		a.log.Warn().Err(err).Msg("invalid key binding in config")
	}

	// 7. Automatic fold trigger. Started before any document opens so
	// it sees every document.opened event.
	a.trigger = fold.NewTrigger(a.bus, fold.NewFolder(a.log), a.foldSettings, a.session.FoldView, a.log)
	if err := a.trigger.Start(); err != nil {
		return &InitError{Component: "fold trigger", Err: err}
	}

	// 8. Config file watcher. A missing config directory is not fatal.
	if w, err := config.NewWatcher(a.cfg, a.log); err != nil {
		a.log.Warn().Err(err).Msg("config watcher disabled")
	} else {
		a.watcher = w
	}
	a.cfg.OnChange(func(config.Change) {
		a.interrupt()
	})

	// 9. Initial documents
	for _, file := range a.opts.Files {
		if _, err := a.session.Open(file); err != nil {
			a.log.Warn().Err(err).Str("path", file).Msg("failed to open document")
		}
	}

	return nil
}

// appHandler serves the application namespace.
func (a *Application) appHandler() command.Handler {
	h := command.NewBase("app")
	h.Register("app.quit", func(_ command.Action, _ *command.Context) command.Result {
		return command.Success().WithQuit()
	})
	return h
}

// foldSettings returns the fold configuration with command line
// overrides applied.
func (a *Application) foldSettings() fold.Settings {
	s := a.cfg.Fold()
	if a.opts.FoldLevel >= 0 {
		s.Level = a.opts.FoldLevel
	}
	return s
}

// SetBackend overrides the terminal backend. It must be called before
// Run.
func (a *Application) SetBackend(b renderer.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.backend = b
	return nil
}

// Run starts the main loop and blocks until a quit action or Shutdown.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if a.backend == nil {
		term, err := renderer.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		a.backend = term
	}
	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()

	a.renderer = renderer.New(a.backend, a.log)
	a.viewport = &renderer.Viewport{ScrollOff: a.cfg.Editor().ScrollOff}

	if err := a.subscribeRedraw(); err != nil {
		return &InitError{Component: "subscriptions", Err: err}
	}

	a.log.Info().Msg("event loop started")
	defer a.log.Info().Msg("event loop stopped")
	return a.eventLoop()
}

// eventLoop polls the backend and routes events until quit.
func (a *Application) eventLoop() error {
	a.draw()
	for a.running.Load() {
		ev := a.backend.PollEvent()
		switch ev.Type {
		case renderer.EventResize:
			a.draw()
		case renderer.EventInterrupt:
			if !a.running.Load() {
				return nil
			}
			a.draw()
		case renderer.EventKey:
			redraw, quit := a.handleKey(ev)
			if quit {
				return nil
			}
			if redraw {
				a.draw()
			}
		}
	}
	return nil
}

// handleKey resolves a key press to an action and dispatches it.
// Unbound digits accumulate into a count prefix for the next action.
func (a *Application) handleKey(ev renderer.Event) (redraw, quit bool) {
	name, ok := a.keymap.Lookup(ev)
	if !ok {
		if ev.Key == renderer.KeyRune && isCountDigit(ev.Rune, a.count) {
			a.count = a.count*10 + int(ev.Rune-'0')
		} else {
			a.count = 0
		}
		return false, false
	}

	action := command.New(name)
	if a.count > 0 {
		action = action.WithCount(a.count)
		a.count = 0
	}

	result := a.dispatcher.Dispatch(action, a.commandContext())

	prev := a.message
	switch {
	case result.Message != "":
		a.message = result.Message
	case result.Error != nil:
		a.message = result.Error.Error()
	default:
		a.message = ""
	}

	if result.Quit {
		return false, true
	}
	return result.Redraw || a.message != prev, false
}

// commandContext assembles the dispatch context for the active view.
func (a *Application) commandContext() *command.Context {
	ctx := &command.Context{
		Fold: a.foldSettings(),
		Log:  a.log,
	}
	if a.viewport != nil {
		ctx.PageLines = a.viewport.Height
	}
	if v := a.session.Active(); v != nil {
		ctx.View = v
	}
	return ctx
}

// draw renders the current frame.
func (a *Application) draw() {
	ui := a.cfg.UI()
	f := renderer.Frame{
		Viewport:        a.viewport,
		Message:         a.message,
		ShowLineNumbers: ui.LineNumbers,
		ShowStatus:      ui.StatusLine,
	}
	if v := a.session.Active(); v != nil {
		f.View = v
	}
	a.renderer.Draw(f)
}

// subscribeRedraw repaints on fold and document changes that happen
// outside the key loop, like the debounced automatic fold.
func (a *Application) subscribeRedraw() error {
	wake := func(_ context.Context, _ any) error {
		a.interrupt()
		return nil
	}
	for _, pattern := range []event.Topic{"fold.*", "document.*"} {
		if _, err := a.bus.SubscribeFunc(pattern, wake, event.WithAsync()); err != nil {
			return err
		}
	}
	return nil
}

// interrupt wakes the event loop for a repaint.
func (a *Application) interrupt() {
	if a.running.Load() && a.backend != nil {
		a.backend.Interrupt()
	}
}

// Shutdown asks the running loop to exit. It is safe to call from any
// goroutine, typically on SIGINT.
func (a *Application) Shutdown() {
	if a.running.CompareAndSwap(true, false) && a.backend != nil {
		a.backend.Interrupt()
	}
}

// Close releases everything bootstrap created. It runs once.
func (a *Application) Close() {
	a.closeOnce.Do(func() {
		if a.trigger != nil {
			a.trigger.Stop()
		}
		if a.watcher != nil {
			_ = a.watcher.Stop()
		}
		if a.cfg != nil {
			a.cfg.Close()
		}
		if a.bus != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = a.bus.Stop(ctx)
		}
		if a.logClose != nil {
			_ = a.logClose.Close()
		}
	})
}

// IsRunning reports whether the event loop is active.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// Session returns the document session.
func (a *Application) Session() *session.Session {
	return a.session
}

// Config returns the configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}

// EventBus returns the event bus.
func (a *Application) EventBus() event.Bus {
	return a.bus
}

// isCountDigit reports whether the rune extends a count prefix. A
// leading zero is not a count.
func isCountDigit(r rune, count int) bool {
	return (r >= '1' && r <= '9') || (r == '0' && count > 0)
}
