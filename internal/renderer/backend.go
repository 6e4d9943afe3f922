package renderer

// Backend is the drawing surface the renderer targets.
type Backend interface {
	// Init prepares the backend. Call before any other method.
	Init() error

	// Shutdown releases the backend and restores the terminal.
	Shutdown()

	// Size returns the current dimensions.
	Size() (width, height int)

	// SetCell puts a rune at a position. Out-of-range positions are
	// ignored.
	SetCell(x, y int, r rune, style Style)

	// Clear erases the whole surface.
	Clear()

	// Show flushes buffered changes to the display.
	Show()

	// ShowCursor positions and shows the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// Interrupt posts an EventInterrupt, unblocking PollEvent.
	Interrupt()
}
