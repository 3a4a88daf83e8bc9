// Package text provides the styled-text fragment type: the canonical
// unit of formatted text produced by the ansi decoder and consumed by
// rendering code. Fragment values are immutable; helpers build new
// slices instead of mutating existing ones.
package text

import (
	"strings"

	"github.com/dshills/termio/style"
)

// Fragment is a run of text with a single style. ZeroWidth marks text
// that is sent to the terminal verbatim but occupies no display width
// (e.g. OSC prompt markers).
type Fragment struct {
	Style     style.Style
	Text      string
	ZeroWidth bool
}

// Fragments is a sequence of styled fragments.
type Fragments []Fragment

// Plain wraps a plain string in a single default-styled fragment.
func Plain(s string) Fragments {
	if s == "" {
		return nil
	}
	return Fragments{{Text: s}}
}

// Styled wraps a string in a single fragment with the given style.
func Styled(s string, st style.Style) Fragments {
	if s == "" {
		return nil
	}
	return Fragments{{Style: st, Text: s}}
}

// PlainText returns the concatenated text of all fragments,
// excluding zero-width fragments.
func (f Fragments) PlainText() string {
	var b strings.Builder
	for _, frag := range f {
		if frag.ZeroWidth {
			continue
		}
		b.WriteString(frag.Text)
	}
	return b.String()
}

// Merge concatenates several fragment sequences into a new one.
func Merge(lists ...Fragments) Fragments {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	out := make(Fragments, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// ApplyStyle returns a copy of the fragments with the attributes and
// any unset colors of each non-zero-width fragment filled in from base.
func (f Fragments) ApplyStyle(base style.Style) Fragments {
	if len(f) == 0 {
		return nil
	}
	out := make(Fragments, len(f))
	for i, frag := range f {
		if frag.ZeroWidth {
			out[i] = frag
			continue
		}
		st := frag.Style
		if st.Foreground == style.ColorDefault {
			st.Foreground = base.Foreground
		}
		if st.Background == style.ColorDefault {
			st.Background = base.Background
		}
		st.Attributes |= base.Attributes
		out[i] = Fragment{Style: st, Text: frag.Text}
	}
	return out
}
