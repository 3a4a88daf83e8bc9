// Package scrollpane composes content taller than its viewport onto a
// screen. The content renders into a temporary screen at full virtual
// height; the pane copies the visible band into place, draws an
// optional scrollbar, and adjusts its scroll position so the cursor or
// the focused window stays in view on the next frame.
package scrollpane

import (
	"github.com/dshills/termio/screen"
	"github.com/dshills/termio/style"
)

// Container is anything that can render itself into a screen
// rectangle.
type Container interface {
	Render(s *screen.Screen, wp screen.WritePosition)
}

// ScrollOffsets is the margin, in rows, kept between the cursor and
// the viewport edges when scrolling to keep the cursor visible.
type ScrollOffsets struct {
	Top    int
	Bottom int
}

// Pane scrolls a Container vertically inside a fixed viewport. It is
// not safe for concurrent use.
type Pane struct {
	content Container

	maxAvailableHeight       int
	keepCursorVisible        bool
	keepFocusedWindowVisible bool
	showScrollbar            bool
	displayArrows            bool
	offsets                  ScrollOffsets
	upArrow                  string
	downArrow                string

	focus    screen.WindowID
	hasFocus bool

	verticalScroll int
}

// Option configures a Pane.
type Option func(*Pane)

// WithMaxAvailableHeight bounds the virtual height the content may
// render into.
func WithMaxAvailableHeight(h int) Option {
	return func(p *Pane) { p.maxAvailableHeight = h }
}

// WithKeepCursorVisible controls whether the pane scrolls to keep the
// focused window's cursor inside the viewport.
func WithKeepCursorVisible(keep bool) Option {
	return func(p *Pane) { p.keepCursorVisible = keep }
}

// WithKeepFocusedWindowVisible controls whether the pane scrolls to
// keep the focused window's rectangle inside the viewport.
func WithKeepFocusedWindowVisible(keep bool) Option {
	return func(p *Pane) { p.keepFocusedWindowVisible = keep }
}

// WithScrollbar controls whether a scrollbar column is drawn when the
// content is taller than the viewport.
func WithScrollbar(show bool) Option {
	return func(p *Pane) { p.showScrollbar = show }
}

// WithArrows controls whether the scrollbar carries up and down arrow
// cells.
func WithArrows(display bool) Option {
	return func(p *Pane) { p.displayArrows = display }
}

// WithArrowSymbols replaces the scrollbar arrow characters.
func WithArrowSymbols(up, down string) Option {
	return func(p *Pane) {
		p.upArrow = up
		p.downArrow = down
	}
}

// WithScrollOffsets replaces the cursor scroll margins.
func WithScrollOffsets(o ScrollOffsets) Option {
	return func(p *Pane) { p.offsets = o }
}

// New returns a pane around content.
func New(content Container, opts ...Option) *Pane {
	p := &Pane{
		content:                  content,
		maxAvailableHeight:       10000,
		keepCursorVisible:        true,
		keepFocusedWindowVisible: true,
		showScrollbar:            true,
		displayArrows:            true,
		offsets:                  ScrollOffsets{Top: 1, Bottom: 1},
		upArrow:                  "^",
		downArrow:                "v",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetFocus tells the pane which window's cursor and rectangle to keep
// visible.
func (p *Pane) SetFocus(id screen.WindowID) {
	p.focus = id
	p.hasFocus = true
}

// VerticalScroll returns the current scroll position in rows.
func (p *Pane) VerticalScroll() int {
	return p.verticalScroll
}

// SetVerticalScroll moves the scroll position. The value is clamped
// against the content height on the next render.
func (p *Pane) SetVerticalScroll(n int) {
	p.verticalScroll = max(0, n)
}

// Render draws the visible band of the content into dst at wp. The
// scroll position is recomputed afterwards, so a cursor move takes
// effect on the following frame.
func (p *Pane) Render(dst *screen.Screen, wp screen.WritePosition) {
	if wp.Width <= 0 || wp.Height <= 0 {
		return
	}

	tmp := screen.New()
	p.content.Render(tmp, screen.WritePosition{
		Width:  wp.Width,
		Height: p.maxAvailableHeight,
	})
	virtualHeight := tmp.Height()

	visibleHeight := min(wp.Height, virtualHeight-p.verticalScroll)
	for y := 0; y < visibleHeight; y++ {
		src := y + p.verticalScroll
		for x := 0; x < wp.Width; x++ {
			dst.SetCell(wp.X+x, wp.Y+y, tmp.Cell(x, src))
			if esc := tmp.ZeroWidthEscape(x, src); esc != "" {
				dst.AppendZeroWidthEscape(wp.X+x, wp.Y+y, esc)
			}
		}
	}

	var focusWP *screen.WritePosition
	var focusCursor *screen.Point
	for _, id := range tmp.WindowIDs() {
		twp, _ := tmp.WritePosition(id)
		dst.SetWritePosition(id, screen.WritePosition{
			X:      wp.X + twp.X,
			Y:      wp.Y + twp.Y - p.verticalScroll,
			Width:  twp.Width,
			Height: twp.Height,
		})
		cp, hasCursor := tmp.CursorPosition(id)
		if hasCursor {
			translated := screen.Point{
				X: wp.X + cp.X,
				Y: wp.Y + cp.Y - p.verticalScroll,
			}
			dst.SetCursorPosition(id, ClipPoint(translated, wp))
		}
		if p.hasFocus && id == p.focus {
			twp := twp
			focusWP = &twp
			if hasCursor {
				cp := cp
				focusCursor = &cp
			}
		}
	}

	if p.showScrollbar && virtualHeight > wp.Height {
		p.drawScrollbar(dst, wp, virtualHeight)
	}

	p.makeVisible(wp.Height, virtualHeight, focusWP, focusCursor)
}

// makeVisible narrows the allowed scroll range around the focused
// window and cursor, then clamps the scroll position into it.
func (p *Pane) makeVisible(visibleHeight, virtualHeight int, focusWP *screen.WritePosition, cursor *screen.Point) {
	minScroll := 0
	maxScroll := max(0, virtualHeight-visibleHeight)

	if p.keepCursorVisible && cursor != nil {
		minScroll = max(minScroll, cursor.Y-visibleHeight+1+p.offsets.Bottom)
		maxScroll = max(0, min(maxScroll, cursor.Y-p.offsets.Top))
	}

	if p.keepFocusedWindowVisible && focusWP != nil {
		winMin := focusWP.Y + focusWP.Height - visibleHeight
		winMax := focusWP.Y
		if winMin > maxScroll {
			// The window is taller than the viewport; show its top.
			minScroll = winMin
		} else {
			minScroll = max(minScroll, winMin)
		}
		maxScroll = max(minScroll, min(maxScroll, winMax))
	}

	if minScroll > maxScroll {
		minScroll = maxScroll
	}
	p.verticalScroll = max(minScroll, min(maxScroll, p.verticalScroll))

	// Scroll offsets may push the range past the end of the content;
	// never scroll beyond the last full viewport.
	p.verticalScroll = max(0, min(p.verticalScroll, max(0, virtualHeight-visibleHeight)))
}

// drawScrollbar fills the rightmost viewport column. The thumb is
// drawn reversed over a dim track, sized by the visible fraction of
// the content.
func (p *Pane) drawScrollbar(dst *screen.Screen, wp screen.WritePosition, virtualHeight int) {
	x := wp.X + wp.Width - 1
	y := wp.Y
	track := wp.Height
	if p.displayArrows {
		track -= 2
	}
	if track <= 0 {
		return
	}

	fracVisible := float64(wp.Height) / float64(virtualHeight)
	fracAbove := float64(p.verticalScroll) / float64(virtualHeight)
	thumb := min(track, max(1, int(float64(track)*fracVisible)))
	top := int(float64(track) * fracAbove)

	arrowStyle := style.Style{}.Reverse()
	trackStyle := style.Style{}.Dim()

	if p.displayArrows {
		dst.SetCell(x, y, screen.Cell{Content: p.upArrow, Width: 1, Style: arrowStyle})
		y++
	}
	for i := 0; i < track; i++ {
		st := trackStyle
		if i >= top && i < top+thumb {
			st = arrowStyle
		}
		dst.SetCell(x, y+i, screen.Cell{Content: "|", Width: 1, Style: st})
	}
	if p.displayArrows {
		dst.SetCell(x, y+track, screen.Cell{Content: p.downArrow, Width: 1, Style: arrowStyle})
	}
}

// ClipPoint clamps p into the rectangle wp so that reported positions
// never land outside the pane.
func ClipPoint(p screen.Point, wp screen.WritePosition) screen.Point {
	p.X = max(wp.X, min(p.X, wp.X+wp.Width-1))
	p.Y = max(wp.Y, min(p.Y, wp.Y+wp.Height-1))
	return p
}
