package ansi

import (
	"fmt"
	"strings"

	"github.com/dshills/termio/text"
)

var escapeReplacer = strings.NewReplacer("\x1b", "?", "\b", "?")

// Escape neutralizes characters with special meaning in ANSI input.
// ESC and backspace are replaced so escaped text can never introduce
// its own control sequences.
func Escape(s string) string {
	return escapeReplacer.Replace(s)
}

// Format is like fmt.Sprintf followed by Decode, except that every
// argument is escaped first. Untrusted interpolated values therefore
// cannot inject ANSI control codes into the surrounding styling.
func Format(format string, args ...any) text.Fragments {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = Escape(fmt.Sprint(a))
	}
	return Decode(fmt.Sprintf(format, escaped...))
}
