package renderer

// Color is a terminal palette color.
type Color int16

// Palette colors. ColorDefault is the terminal's own foreground or
// background.
const (
	ColorDefault Color = iota - 1
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Style describes how a cell is drawn.
type Style struct {
	FG      Color
	BG      Color
	Bold    bool
	Dim     bool
	Reverse bool
}

// StyleDefault draws with the terminal's own colors.
var StyleDefault = Style{FG: ColorDefault, BG: ColorDefault}

// WithFG returns a copy of the style with the given foreground.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBold returns a bold copy of the style.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// WithDim returns a dim copy of the style.
func (s Style) WithDim() Style {
	s.Dim = true
	return s
}

// WithReverse returns a reverse-video copy of the style.
func (s Style) WithReverse() Style {
	s.Reverse = true
	return s
}
