// Package style provides text styling primitives for terminal output:
// attribute bitmasks, color tokens and the Style value attached to
// styled text fragments and screen cells.
package style

import "strings"

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrBlink               // Blinking text (rarely supported)
	AttrReverse             // Reverse video (swap fg/bg)
	AttrStrike              // Strikethrough text
	AttrHidden              // Hidden/invisible text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style represents the visual style of a run of text.
// The zero value is the terminal's default style.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// Default returns the default terminal style.
func Default() Style {
	return Style{}
}

// IsDefault returns true if the style carries no color or attribute.
func (s Style) IsDefault() bool {
	return s.Foreground == ColorDefault &&
		s.Background == ColorDefault &&
		s.Attributes == AttrNone
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s == other
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a new style with the given attributes.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns a new style with the reverse attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Dim returns a new style with the dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// String renders the style as a space-separated token list, e.g.
// "ansired bg:ansiblue bold underline". The default style renders
// as the empty string.
func (s Style) String() string {
	var parts []string
	if s.Foreground != ColorDefault {
		parts = append(parts, string(s.Foreground))
	}
	if s.Background != ColorDefault {
		parts = append(parts, "bg:"+string(s.Background))
	}
	if s.Attributes.Has(AttrBold) {
		parts = append(parts, "bold")
	}
	if s.Attributes.Has(AttrUnderline) {
		parts = append(parts, "underline")
	}
	if s.Attributes.Has(AttrItalic) {
		parts = append(parts, "italic")
	}
	if s.Attributes.Has(AttrBlink) {
		parts = append(parts, "blink")
	}
	if s.Attributes.Has(AttrReverse) {
		parts = append(parts, "reverse")
	}
	if s.Attributes.Has(AttrHidden) {
		parts = append(parts, "hidden")
	}
	if s.Attributes.Has(AttrStrike) {
		parts = append(parts, "strike")
	}
	if s.Attributes.Has(AttrDim) {
		parts = append(parts, "dim")
	}
	return strings.Join(parts, " ")
}
