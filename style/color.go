package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color token. Named ANSI colors use the "ansi" prefix
// ("ansired", "ansibrightred"); extended colors are hex strings
// ("#ff8700"). The empty string is the terminal's default color.
type Color string

// ColorDefault represents the terminal's default color.
const ColorDefault Color = ""

// Named ANSI colors (SGR 30-37 foreground, 40-47 background).
const (
	ColorBlack   Color = "ansiblack"
	ColorRed     Color = "ansired"
	ColorGreen   Color = "ansigreen"
	ColorYellow  Color = "ansiyellow"
	ColorBlue    Color = "ansiblue"
	ColorMagenta Color = "ansimagenta"
	ColorCyan    Color = "ansicyan"
	ColorWhite   Color = "ansiwhite"
)

// ansiColorNames maps SGR offsets 0-7 to base color names.
var ansiColorNames = [8]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// ColorFromSGR returns the named color for a standard SGR offset 0-7.
func ColorFromSGR(offset int) Color {
	if offset < 0 || offset > 7 {
		return ColorDefault
	}
	return Color("ansi" + ansiColorNames[offset])
}

// BrightColorFromSGR returns the bright named color for an SGR offset
// 0-7 (codes 90-97 and 100-107).
func BrightColorFromSGR(offset int) Color {
	if offset < 0 || offset > 7 {
		return ColorDefault
	}
	return Color("ansibright" + ansiColorNames[offset])
}

// ColorFromRGB returns a true-color hex token.
func ColorFromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// ColorFrom256 returns the hex token for an xterm 256-palette index.
// Out-of-range indexes are clamped.
func ColorFrom256(index int) Color {
	if index < 0 {
		index = 0
	}
	if index > 255 {
		index = 255
	}
	return palette256[index]
}

// palette256 holds the xterm 256-color palette as hex tokens.
var palette256 = buildPalette256()

// buildPalette256 constructs the standard xterm palette: 16 base
// colors, a 6x6x6 color cube, and a 24-step grayscale ramp.
func buildPalette256() [256]Color {
	var p [256]Color

	base := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, rgb := range base {
		p[i] = hexToken(rgb[0], rgb[1], rgb[2])
	}

	// 6x6x6 color cube (16-231). Levels follow xterm: 0 then 95+40*n.
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = hexToken(levels[r], levels[g], levels[b])
				idx++
			}
		}
	}

	// Grayscale ramp (232-255).
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p[idx] = hexToken(v, v, v)
		idx++
	}
	return p
}

func hexToken(r, g, b uint8) Color {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	return Color(c.Hex())
}
