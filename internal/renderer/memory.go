package renderer

import (
	"strings"
	"sync"
)

// Memory is an in-memory backend for tests. Cells are stored in a
// fixed-size grid and events arrive through Post.
type Memory struct {
	mu      sync.Mutex
	width   int
	height  int
	cells   [][]rune
	styles  [][]Style
	cursorX int
	cursorY int
	cursor  bool
	events  chan Event
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.cells = make([][]rune, m.height)
	m.styles = make([][]Style, m.height)
	for y := 0; y < m.height; y++ {
		m.cells[y] = make([]rune, m.width)
		m.styles[y] = make([]Style, m.width)
		for x := 0; x < m.width; x++ {
			m.cells[y][x] = ' '
			m.styles[y][x] = StyleDefault
		}
	}
}

// Init implements Backend.
func (m *Memory) Init() error {
	return nil
}

// Shutdown implements Backend.
func (m *Memory) Shutdown() {}

// Size implements Backend.
func (m *Memory) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// SetCell implements Backend.
func (m *Memory) SetCell(x, y int, r rune, style Style) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y][x] = r
	m.styles[y][x] = style
}

// Clear implements Backend.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// Show implements Backend. The grid is always current, so there is
// nothing to flush.
func (m *Memory) Show() {}

// ShowCursor implements Backend.
func (m *Memory) ShowCursor(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorX, m.cursorY, m.cursor = x, y, true
}

// HideCursor implements Backend.
func (m *Memory) HideCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursor = false
}

// PollEvent implements Backend.
func (m *Memory) PollEvent() Event {
	return <-m.events
}

// Interrupt implements Backend.
func (m *Memory) Interrupt() {
	m.events <- Event{Type: EventInterrupt}
}

// Post injects an event for PollEvent to return.
func (m *Memory) Post(ev Event) {
	m.events <- ev
}

// PostKey injects a rune key press.
func (m *Memory) PostKey(r rune) {
	m.Post(Event{Type: EventKey, Key: KeyRune, Rune: r})
}

// Row returns the text of a grid row with trailing spaces trimmed.
func (m *Memory) Row(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if y < 0 || y >= m.height {
		return ""
	}
	return strings.TrimRight(string(m.cells[y]), " ")
}

// StyleAt returns the style of one cell.
func (m *Memory) StyleAt(x, y int) Style {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return StyleDefault
	}
	return m.styles[y][x]
}

// Cursor returns the cursor position and whether it is shown.
func (m *Memory) Cursor() (x, y int, shown bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorX, m.cursorY, m.cursor
}
