// Package ansi decodes ANSI SGR escaped text into styled fragments.
//
// Characters between 0x01 and 0x02 are passed through verbatim but
// tagged as zero display width, so prompt-integration sequences can be
// embedded in formatted text without affecting layout.
package ansi

import (
	"strconv"
	"strings"

	"github.com/dshills/termio/style"
	"github.com/dshills/termio/text"
)

// Zone markers for zero-width passthrough text.
const (
	zeroWidthStart = '\x01'
	zeroWidthEnd   = '\x02'
)

type decoderState int

const (
	stateText decoderState = iota
	stateEscape
	stateZeroWidth
)

type decoder struct {
	state decoderState
	cur   style.Style

	run  strings.Builder // pending text in the current style
	esc  strings.Builder // escape sequence body (after ESC)
	zero strings.Builder // zero-width zone content

	frags text.Fragments
}

// Decode parses a string containing ANSI SGR escapes and zero-width
// zones into styled fragments. Unrecognized escape sequences leave the
// running style untouched; decoding never fails.
func Decode(value string) text.Fragments {
	d := &decoder{}
	for _, r := range value {
		d.feed(r)
	}
	d.finish()
	return d.frags
}

func (d *decoder) feed(r rune) {
	switch d.state {
	case stateEscape:
		d.esc.WriteRune(r)
		// A letter or '~' terminates the sequence.
		if isSequenceFinal(r) {
			d.applySGR(d.esc.String())
			d.esc.Reset()
			d.state = stateText
		}
	case stateZeroWidth:
		if r == zeroWidthEnd {
			d.frags = append(d.frags, text.Fragment{
				Text:      d.zero.String(),
				ZeroWidth: true,
			})
			d.zero.Reset()
			d.state = stateText
			return
		}
		d.zero.WriteRune(r)
	default: // stateText
		switch r {
		case zeroWidthStart:
			d.flushRun()
			d.state = stateZeroWidth
		case '\x1b':
			d.flushRun()
			d.state = stateEscape
		default:
			d.run.WriteRune(r)
		}
	}
}

// finish flushes whatever is still buffered at end of input. A pending
// text run must not be dropped; an unterminated escape or zero-width
// zone is discarded as malformed.
func (d *decoder) finish() {
	d.flushRun()
	d.esc.Reset()
	d.zero.Reset()
	d.state = stateText
}

func (d *decoder) flushRun() {
	if d.run.Len() == 0 {
		return
	}
	d.frags = append(d.frags, text.Fragment{
		Style: d.cur,
		Text:  d.run.String(),
	})
	d.run.Reset()
}

func isSequenceFinal(r rune) bool {
	return r == '~' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// applySGR interprets an escape body of the form "[<n>;<n>;...m" and
// updates the running style. Anything else is ignored.
func (d *decoder) applySGR(body string) {
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "m") {
		return
	}
	params := parseParams(body[1 : len(body)-1])

	for i := 0; i < len(params); i++ {
		switch p := params[i]; {
		case p == 0:
			d.cur = style.Style{}
		case p == 1:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrBold)
		case p == 2:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrDim)
		case p == 3:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrItalic)
		case p == 4:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrUnderline)
		case p == 5:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrBlink)
		case p == 7:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrReverse)
		case p == 8:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrHidden)
		case p == 9:
			d.cur.Attributes = d.cur.Attributes.With(style.AttrStrike)
		case p == 22:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrBold | style.AttrDim)
		case p == 23:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrItalic)
		case p == 24:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrUnderline)
		case p == 25:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrBlink)
		case p == 27:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrReverse)
		case p == 28:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrHidden)
		case p == 29:
			d.cur.Attributes = d.cur.Attributes.Without(style.AttrStrike)
		case p >= 30 && p <= 37:
			d.cur.Foreground = style.ColorFromSGR(p - 30)
		case p == 38:
			i = d.extendedColor(params, i, true)
		case p == 39:
			d.cur.Foreground = style.ColorDefault
		case p >= 40 && p <= 47:
			d.cur.Background = style.ColorFromSGR(p - 40)
		case p == 48:
			i = d.extendedColor(params, i, false)
		case p == 49:
			d.cur.Background = style.ColorDefault
		case p >= 90 && p <= 97:
			d.cur.Foreground = style.BrightColorFromSGR(p - 90)
		case p >= 100 && p <= 107:
			d.cur.Background = style.BrightColorFromSGR(p - 100)
		}
	}
}

// extendedColor handles 38/48 extended color forms (";5;n" 256-color,
// ";2;r;g;b" truecolor) and returns the index of the last consumed
// parameter. Truncated forms are ignored.
func (d *decoder) extendedColor(params []int, i int, foreground bool) int {
	if i+1 >= len(params) {
		return i
	}
	var c style.Color
	switch params[i+1] {
	case 5:
		if i+2 >= len(params) {
			return i + 1
		}
		c = style.ColorFrom256(params[i+2])
		i += 2
	case 2:
		if i+4 >= len(params) {
			return i + 1
		}
		c = style.ColorFromRGB(
			clampByte(params[i+2]),
			clampByte(params[i+3]),
			clampByte(params[i+4]),
		)
		i += 4
	default:
		return i
	}
	if foreground {
		d.cur.Foreground = c
	} else {
		d.cur.Background = c
	}
	return i
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// parseParams splits a semicolon-separated SGR parameter list.
// Empty entries decode as 0 per the SGR convention.
func parseParams(s string) []int {
	if s == "" {
		return []int{0}
	}
	parts := strings.Split(s, ";")
	params := make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			params = append(params, 0)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			// Malformed parameter; skip rather than abort the stream.
			continue
		}
		params = append(params, n)
	}
	return params
}
