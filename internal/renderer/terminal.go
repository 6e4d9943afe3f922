package renderer

import "github.com/gdamore/tcell/v2"

// Terminal is the tcell-backed drawing surface.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend on the process's tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init implements Backend.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Shutdown implements Backend.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size implements Backend.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell implements Backend.
func (t *Terminal) SetCell(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

// Clear implements Backend.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show implements Backend.
func (t *Terminal) Show() {
	t.screen.Show()
}

// ShowCursor implements Backend.
func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// HideCursor implements Backend.
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// PollEvent implements Backend. A nil tcell event, seen after Fini,
// reads as an interrupt so the event loop unwinds.
func (t *Terminal) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return convertKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	case nil:
		return Event{Type: EventInterrupt}
	default:
		return Event{Type: EventNone}
	}
}

// Interrupt implements Backend.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// convertStyle maps a renderer style onto tcell.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.FG)).
		Background(convertColor(s.BG))
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Dim {
		style = style.Dim(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}

// convertColor maps palette colors onto tcell. The Color constants
// follow ANSI ordering, so the value doubles as the palette index.
func convertColor(c Color) tcell.Color {
	if c < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}

// convertKey maps a tcell key event onto a renderer key event.
func convertKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	case tcell.KeyEnter:
		return Event{Type: EventKey, Key: KeyEnter}
	case tcell.KeyEscape:
		return Event{Type: EventKey, Key: KeyEscape}
	case tcell.KeyTab:
		return Event{Type: EventKey, Key: KeyTab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Type: EventKey, Key: KeyBackspace}
	case tcell.KeyUp:
		return Event{Type: EventKey, Key: KeyUp}
	case tcell.KeyDown:
		return Event{Type: EventKey, Key: KeyDown}
	case tcell.KeyLeft:
		return Event{Type: EventKey, Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Type: EventKey, Key: KeyRight}
	case tcell.KeyPgUp:
		return Event{Type: EventKey, Key: KeyPageUp}
	case tcell.KeyPgDn:
		return Event{Type: EventKey, Key: KeyPageDown}
	case tcell.KeyHome:
		return Event{Type: EventKey, Key: KeyHome}
	case tcell.KeyEnd:
		return Event{Type: EventKey, Key: KeyEnd}
	case tcell.KeyCtrlC:
		return Event{Type: EventKey, Key: KeyCtrlC}
	case tcell.KeyCtrlD:
		return Event{Type: EventKey, Key: KeyCtrlD}
	case tcell.KeyCtrlU:
		return Event{Type: EventKey, Key: KeyCtrlU}
	default:
		return Event{Type: EventNone}
	}
}
