package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/engine/document"
	"github.com/dshills/notefold/internal/event"
	"github.com/dshills/notefold/internal/event/events"
	"github.com/dshills/notefold/internal/fold"
)

// Session manages all open documents. Views are keyed by absolute path;
// reopening a path activates the existing view instead of reading the
// file again.
type Session struct {
	bus    event.Bus
	folder *fold.Folder
	log    zerolog.Logger

	mu     sync.RWMutex
	views  map[string]*View
	order  []string
	active *View
}

// New creates an empty session. A nil bus disables lifecycle events.
func New(bus event.Bus, log zerolog.Logger) *Session {
	return &Session{
		bus:    bus,
		folder: fold.NewFolder(log),
		log:    log.With().Str("component", "session").Logger(),
		views:  make(map[string]*View),
	}
}

// Open opens a document from a file and makes it active. Opening an
// already open path activates the existing view.
func (s *Session) Open(path string) (*View, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if v, ok := s.views[abs]; ok {
		s.active = v
		s.mu.Unlock()
		s.publishActivated(v)
		return v, nil
	}
	s.mu.Unlock()

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	doc := document.NewFromString(string(content), document.WithPath(abs))
	return s.add(abs, doc), nil
}

// OpenString opens a document from text instead of a file, keyed by the
// given name. It is used for piped input and tests.
func (s *Session) OpenString(name, text string) *View {
	doc := document.NewFromString(text, document.WithPath(name))
	return s.add(name, doc)
}

// add registers a view for the document, makes it active, and announces
// the open.
func (s *Session) add(key string, doc *document.Document) *View {
	v := newView(doc, s.folder, s.bus, s.log)

	s.mu.Lock()
	s.views[key] = v
	s.order = append(s.order, key)
	s.active = v
	s.mu.Unlock()

	s.log.Info().
		Str("path", v.Path()).
		Int("lines", v.LineCount()).
		Strs("tags", v.Tags()).
		Msg("document opened")
	s.publishOpened(v)
	return v
}

// Close closes the document at the path. When it was active, the most
// recently opened remaining document becomes active.
func (s *Session) Close(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	v, ok := s.views[abs]
	if !ok {
		// Views opened from text are keyed by their given name.
		if v, ok = s.views[path]; ok {
			abs = path
		}
	}
	if !ok {
		s.mu.Unlock()
		return ErrNotOpen
	}

	delete(s.views, abs)
	for i, key := range s.order {
		if key == abs {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.active == v {
		s.active = nil
		if n := len(s.order); n > 0 {
			s.active = s.views[s.order[n-1]]
		}
	}
	s.mu.Unlock()

	s.publish(event.NewEvent(events.TopicDocumentClosed, events.DocumentClosed{
		DocumentID: v.ID(),
		Path:       v.Path(),
	}, "session"))
	return nil
}

// Active returns the active view, nil when no document is open.
func (s *Session) Active() *View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActive makes the document at the path active.
func (s *Session) SetActive(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	v, ok := s.views[abs]
	if !ok {
		v, ok = s.views[path]
	}
	if !ok {
		s.mu.Unlock()
		return ErrNotOpen
	}
	s.active = v
	s.mu.Unlock()

	s.publishActivated(v)
	return nil
}

// All returns the open views in open order.
func (s *Session) All() []*View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*View, 0, len(s.order))
	for _, key := range s.order {
		if v, ok := s.views[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of open documents.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

// FoldView adapts the active view for the automatic fold trigger. ok is
// false when no document is open.
func (s *Session) FoldView() (fold.View, bool) {
	v := s.Active()
	if v == nil {
		return nil, false
	}
	return v, true
}

// publishOpened announces a newly opened document. Delivery is
// synchronous so the automatic fold trigger sees every open.
func (s *Session) publishOpened(v *View) {
	if s.bus == nil {
		return
	}
	e := event.NewEvent(events.TopicDocumentOpened, events.DocumentOpened{
		DocumentID: v.ID(),
		Path:       v.Path(),
		LineCount:  v.LineCount(),
		Tags:       v.Tags(),
	}, "session")
	if err := s.bus.PublishSync(context.Background(), e); err != nil {
		s.log.Warn().Err(err).Str("path", v.Path()).Msg("open event dropped")
	}
}

func (s *Session) publishActivated(v *View) {
	s.publish(event.NewEvent(events.TopicDocumentActivated, events.DocumentActivated{
		DocumentID: v.ID(),
		Path:       v.Path(),
	}, "session"))
}

func (s *Session) publish(e any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), e); err != nil {
		s.log.Debug().Err(err).Msg("session event dropped")
	}
}
