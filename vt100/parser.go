// Package vt100 decodes raw VT100/xterm terminal input into keypresses.
//
// The parser is fed arbitrary chunks of input text and invokes a
// callback for every decoded keypress. Sequence boundaries never have
// to line up with chunk boundaries: splitting the input differently
// produces the same keypresses. Ambiguity between a lone Escape and
// the start of a longer escape sequence is resolved either by more
// input arriving or by an explicit Flush, which the caller typically
// drives from a short timer after the last read.
package vt100

import (
	"regexp"
	"strings"

	"github.com/dshills/termio/keys"
)

// Cursor position reports and mouse events carry variable-length
// numeric payloads, so they are matched by pattern rather than by
// table entry. Each pattern comes with a prefix form used to decide
// whether a partial buffer could still grow into a match.
var (
	cprRe         = regexp.MustCompile(`^\x1b\[[0-9]+;[0-9]+R\z`)
	cprPrefixRe   = regexp.MustCompile(`^\x1b\[[0-9;]*\z`)
	mouseRe       = regexp.MustCompile(`(?s)^\x1b\[(<?[0-9;]+[mM]|M...)\z`)
	mousePrefixRe = regexp.MustCompile(`(?s)^\x1b\[(<?[0-9;]*|M.{0,2})\z`)
)

// Parser turns a stream of terminal input into keypress callbacks.
// It is not safe for concurrent use; feed it from a single goroutine.
type Parser struct {
	callback    func(keys.KeyPress)
	prefix      []rune
	prefixCache map[string]bool
}

// NewParser returns a parser that invokes callback once per decoded
// keypress, in input order.
func NewParser(callback func(keys.KeyPress)) *Parser {
	return &Parser{
		callback:    callback,
		prefixCache: make(map[string]bool),
	}
}

// Feed appends data to the parser's buffer and emits every keypress
// that can be resolved without waiting for more input.
func (p *Parser) Feed(data string) {
	for _, r := range data {
		p.prefix = append(p.prefix, r)
		p.process(false)
	}
}

// Flush resolves all buffered input immediately. A buffered sequence
// prefix that never completed is emitted as its literal keys, so a
// lone Escape held back for disambiguation comes out as Escape.
func (p *Parser) Flush() {
	p.process(true)
}

// FeedAndFlush feeds data and then flushes, for callers that know no
// continuation bytes are coming.
func (p *Parser) FeedAndFlush(data string) {
	p.Feed(data)
	p.Flush()
}

// Reset discards any buffered input without emitting keypresses.
func (p *Parser) Reset() {
	p.prefix = p.prefix[:0]
}

func (p *Parser) process(flush bool) {
	for len(p.prefix) > 0 {
		prefix := string(p.prefix)
		strokes, ok := matchSequence(prefix)
		longer := !flush && p.isPrefixOfLongerMatch(prefix)
		switch {
		case ok && !longer:
			p.emit(strokes, prefix)
			p.prefix = p.prefix[:0]
		case longer:
			// Wait for more input; the buffer may still grow
			// into a longer sequence.
			return
		default:
			// Dead prefix. Shed the first rune as a literal key
			// and retry the remainder, which may itself start a
			// valid sequence.
			head := p.prefix[0]
			p.prefix = p.prefix[1:]
			p.emitLiteral(head)
		}
	}
}

// matchSequence reports the keypresses for an exactly matched input
// sequence, consulting the static table and then the report patterns.
func matchSequence(prefix string) ([]stroke, bool) {
	if strokes, ok := sequences[prefix]; ok {
		return strokes, true
	}
	if cprRe.MatchString(prefix) {
		return special(keys.KeyCPRResponse), true
	}
	if mouseRe.MatchString(prefix) {
		return special(keys.KeyMouseEvent), true
	}
	return nil, false
}

// isPrefixOfLongerMatch reports whether some sequence strictly longer
// than prefix starts with it. Results are memoized per parser; input
// streams revisit the same short prefixes constantly.
func (p *Parser) isPrefixOfLongerMatch(prefix string) bool {
	if longer, ok := p.prefixCache[prefix]; ok {
		return longer
	}
	longer := cprPrefixRe.MatchString(prefix) || mousePrefixRe.MatchString(prefix)
	if !longer {
		for seq := range sequences {
			if len(seq) > len(prefix) && strings.HasPrefix(seq, prefix) {
				longer = true
				break
			}
		}
	}
	p.prefixCache[prefix] = longer
	return longer
}

func (p *Parser) emit(strokes []stroke, data string) {
	if p.callback == nil {
		return
	}
	for _, s := range strokes {
		p.callback(keys.KeyPress{Key: s.key, Rune: s.r, Mods: s.mods, Data: data})
	}
}

// emitLiteral emits a single rune shed from a dead prefix. Runes that
// are themselves table entries resolve through the table, so a shed
// ESC byte still comes out as Escape rather than as raw text.
func (p *Parser) emitLiteral(r rune) {
	if strokes, ok := sequences[string(r)]; ok {
		p.emit(strokes, string(r))
		return
	}
	if p.callback != nil {
		p.callback(keys.NewRunePress(r))
	}
}
