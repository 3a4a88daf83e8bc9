// Package telnet implements the server side of the telnet protocol
// negotiation needed to run a terminal application over a socket:
// option negotiation for ECHO and SUPPRESS-GO-AHEAD, window size
// updates (NAWS) and terminal type reports (TTYPE). Application data
// and negotiation replies are delivered through callbacks; the parser
// never writes to the connection itself.
package telnet

import "log"

// Telnet command bytes.
const (
	IAC  byte = 255 // interpret as command
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250 // sub-negotiation begin
	SE   byte = 240 // sub-negotiation end
	NOP  byte = 241
)

// Telnet option bytes.
const (
	OptEcho            byte = 1
	OptSuppressGoAhead byte = 3
	OptTType           byte = 24
	OptNAWS            byte = 31
)

// ttypeIS prefixes a terminal type report inside a TTYPE
// sub-negotiation payload.
const ttypeIS byte = 0

type parserState int

const (
	stateData parserState = iota
	stateCommand
	stateOption
	stateSub
	stateSubIAC
)

// Callbacks receives the events a Parser extracts from the byte
// stream. Nil fields are skipped.
type Callbacks struct {
	// DataReceived is called with runs of application data, with all
	// protocol bytes removed.
	DataReceived func(data []byte)

	// SendResponse is called with a complete negotiation reply that
	// should be written back to the peer, IAC prefix included.
	SendResponse func(response []byte)

	// SizeReceived is called when the peer reports its window size.
	SizeReceived func(rows, cols int)

	// TTypeReceived is called when the peer reports its terminal type.
	TTypeReceived func(ttype string)
}

// Parser decodes a telnet byte stream. Feed it whatever the socket
// produces; protocol framing never has to align with read boundaries.
// It is not safe for concurrent use.
type Parser struct {
	cb Callbacks

	state   parserState
	command byte   // pending DO/DONT/WILL/WONT
	sub     []byte // sub-negotiation payload, IAC escapes removed

	logf func(format string, args ...any)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes protocol diagnostics through logf instead of the
// standard logger.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(p *Parser) { p.logf = logf }
}

// NewParser returns a parser that reports events through cb.
func NewParser(cb Callbacks, opts ...Option) *Parser {
	p := &Parser{
		cb:   cb,
		logf: log.Printf,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feed consumes a chunk of bytes from the connection. Malformed
// protocol input is logged and skipped; Feed never fails.
func (p *Parser) Feed(data []byte) {
	var run []byte // pending application data in this chunk
	flush := func() {
		if len(run) > 0 {
			p.data(run)
			run = nil
		}
	}

	for _, b := range data {
		switch p.state {
		case stateData:
			if b == IAC {
				p.state = stateCommand
			} else {
				run = append(run, b)
			}

		case stateCommand:
			flush()
			switch b {
			case IAC:
				// Escaped 255 in the data stream.
				run = append(run, IAC)
				p.state = stateData
			case DO, DONT, WILL, WONT:
				p.command = b
				p.state = stateOption
			case SB:
				p.sub = p.sub[:0]
				p.state = stateSub
			case NOP:
				p.state = stateData
			default:
				p.logf("telnet: ignoring command %d", b)
				p.state = stateData
			}

		case stateOption:
			p.negotiate(p.command, b)
			p.state = stateData

		case stateSub:
			if b == IAC {
				p.state = stateSubIAC
			} else {
				p.sub = append(p.sub, b)
			}

		case stateSubIAC:
			switch b {
			case IAC:
				// Escaped 255 inside the payload.
				p.sub = append(p.sub, IAC)
				p.state = stateSub
			case SE:
				p.subNegotiation(p.sub)
				p.state = stateData
			default:
				// The payload may not contain a bare IAC. Keep the
				// byte, drop the IAC.
				p.logf("telnet: unexpected IAC %d in sub-negotiation", b)
				p.sub = append(p.sub, b)
				p.state = stateSub
			}
		}
	}
	flush()
}

func (p *Parser) data(b []byte) {
	if p.cb.DataReceived != nil {
		p.cb.DataReceived(b)
	}
}

func (p *Parser) respond(response ...byte) {
	if p.cb.SendResponse != nil {
		p.cb.SendResponse(response)
	}
}

// negotiate answers a DO/DONT/WILL/WONT request. ECHO and
// SUPPRESS-GO-AHEAD are accepted in both directions; everything else
// is refused.
func (p *Parser) negotiate(command, option byte) {
	supported := option == OptEcho || option == OptSuppressGoAhead

	switch command {
	case DO:
		if supported {
			p.respond(IAC, WILL, option)
		} else {
			p.respond(IAC, WONT, option)
		}
	case WILL:
		if supported {
			p.respond(IAC, DO, option)
		} else {
			p.respond(IAC, DONT, option)
		}
	case DONT:
		p.respond(IAC, WONT, option)
	case WONT:
		p.respond(IAC, DONT, option)
	}
}

func (p *Parser) subNegotiation(payload []byte) {
	if len(payload) == 0 {
		p.logf("telnet: empty sub-negotiation")
		return
	}
	option, body := payload[0], payload[1:]
	switch option {
	case OptNAWS:
		p.naws(body)
	case OptTType:
		p.ttype(body)
	default:
		p.logf("telnet: ignoring sub-negotiation for option %d", option)
	}
}

// naws decodes a window size report: two 16-bit big-endian values,
// columns then rows.
func (p *Parser) naws(body []byte) {
	if len(body) != 4 {
		p.logf("telnet: NAWS payload has %d bytes, want 4", len(body))
		return
	}
	cols := int(body[0])<<8 | int(body[1])
	rows := int(body[2])<<8 | int(body[3])
	if p.cb.SizeReceived != nil {
		p.cb.SizeReceived(rows, cols)
	}
}

// ttype decodes a terminal type report: the IS marker followed by the
// terminal name.
func (p *Parser) ttype(body []byte) {
	if len(body) == 0 || body[0] != ttypeIS {
		p.logf("telnet: malformed TTYPE sub-negotiation")
		return
	}
	if p.cb.TTypeReceived != nil {
		p.cb.TTypeReceived(string(body[1:]))
	}
}
