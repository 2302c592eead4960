package damage

import (
	"fmt"
	"strconv"
	"strings"
)

// color is a single cell color: colorDefault means "the terminal's own
// default", anything else is a 256-color palette index.
type color int

const colorDefault color = -1

// 8-color palette indices, the subset of the 256-color table every
// terminal supports.
const (
	ColBlack   = 0
	ColRed     = 1
	ColGreen   = 2
	ColYellow  = 3
	ColBlue    = 4
	ColMagenta = 5
	ColCyan    = 6
	ColWhite   = 7
)

// ColorComponent selects which half of a Style's color pair to set.
type ColorComponent uint8

const (
	ComponentFG ColorComponent = iota
	ComponentBG
)

// Style is a terminal cell's styling: a foreground and background color
// plus bold/underline/reverse. A full terminal emulator's style type also
// carries RGB true-color, a separate underline color, and a dozen other
// SGR attributes; damage.Grid never renders anything but palette colors
// and these three attributes, so that's all a cell needs to remember.
type Style struct {
	fg, bg                   color
	bold, underline, reverse bool
}

const esc = "\x1b"

// NewStyle returns the default style: default colors, no attributes.
func NewStyle() Style {
	return Style{fg: colorDefault, bg: colorDefault}
}

// SetColorDefault resets a color component to the terminal's default.
func (s *Style) SetColorDefault(component ColorComponent) error {
	return s.setColor(component, colorDefault)
}

// SetColor256 sets a color component to a 256-color palette index.
func (s *Style) SetColor256(component ColorComponent, idx int) error {
	if idx < 0 || idx > 255 {
		return fmt.Errorf("damage: color index out of range: %d", idx)
	}
	return s.setColor(component, color(idx))
}

func (s *Style) setColor(component ColorComponent, c color) error {
	switch component {
	case ComponentFG:
		s.fg = c
	case ComponentBG:
		s.bg = c
	default:
		return fmt.Errorf("damage: invalid color component: %d", component)
	}
	return nil
}

// SetBold, SetUnderline and SetReverse set the corresponding SGR attribute.
func (s *Style) SetBold(v bool)      { s.bold = v }
func (s *Style) SetUnderline(v bool) { s.underline = v }
func (s *Style) SetReverse(v bool)   { s.reverse = v }

// sgrParams returns the SGR parameter codes (without the leading reset)
// needed to render s: "1" for bold, "30"-"37" for an 8-color foreground,
// "38;5;N" for a 256-color one, and so on for background.
func (s Style) sgrParams() []string {
	var params []string
	if s.bold {
		params = append(params, "1")
	}
	if s.underline {
		params = append(params, "4")
	}
	if s.reverse {
		params = append(params, "7")
	}
	if s.fg != colorDefault {
		params = append(params, colorParams(s.fg, "3")...)
	}
	if s.bg != colorDefault {
		params = append(params, colorParams(s.bg, "4")...)
	}
	return params
}

// colorParams renders a single color as SGR parameters, base being "3"
// for foreground or "4" for background.
func colorParams(c color, base string) []string {
	if c < 8 {
		return []string{base + strconv.Itoa(int(c))}
	}
	return []string{base + "8", "5", strconv.Itoa(int(c))}
}

// ANSIEscape returns the escape sequence that sets this style starting
// from an unknown terminal state: reset, then every attribute that
// differs from the default.
func (s Style) ANSIEscape() []byte {
	params := append([]string{"0"}, s.sgrParams()...)
	return []byte(esc + "[" + strings.Join(params, ";") + "m")
}

// ANSIEscapeFrom returns the escape sequence that changes the terminal
// from prev's style to s, or nil if they're identical. Grid.Flush calls
// this once per cell so that a run of same-styled cells costs nothing
// beyond the first.
func (s Style) ANSIEscapeFrom(prev Style) []byte {
	if s == prev {
		return nil
	}
	return s.ANSIEscape()
}
