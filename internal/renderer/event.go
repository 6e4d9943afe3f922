package renderer

// EventType identifies a terminal event.
type EventType int

const (
	// EventNone is an event the backend could not classify.
	EventNone EventType = iota

	// EventKey is a key press. Key and, for KeyRune, Rune are set.
	EventKey

	// EventResize reports new terminal dimensions in Width and Height.
	EventResize

	// EventInterrupt is a wakeup posted through Interrupt, used to
	// break the event loop out of PollEvent.
	EventInterrupt
)

// Key identifies a keyboard key.
type Key int

// Keys the application understands. Printable characters arrive as
// KeyRune with the character in Event.Rune.
const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCtrlC
	KeyCtrlD
	KeyCtrlU
)

// Event is one terminal event.
type Event struct {
	Type EventType

	// Key press fields.
	Key  Key
	Rune rune

	// Resize fields.
	Width  int
	Height int
}
