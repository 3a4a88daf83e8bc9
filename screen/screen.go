// Package screen provides the two-dimensional character buffer that
// rendering composes into. A Screen grows on write, tracks cursor and
// layout positions per window, and stores zero-width escape sequences
// alongside the cells they precede.
package screen

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/termio/style"
	"github.com/dshills/termio/text"
)

// Point is a cell coordinate. X is the column, Y the row, both
// zero-based.
type Point struct {
	X int
	Y int
}

// WritePosition is the rectangle a window occupies on a screen.
type WritePosition struct {
	X      int
	Y      int
	Width  int
	Height int
}

// WindowID identifies a window across screens. IDs are opaque and
// unique per NewWindowID call.
type WindowID struct {
	id uuid.UUID
}

// NewWindowID returns a fresh window identifier.
func NewWindowID() WindowID {
	return WindowID{id: uuid.New()}
}

// String returns the identifier in its canonical text form.
func (w WindowID) String() string { return w.id.String() }

// Cell is one screen position. Content holds a full grapheme cluster,
// Width its display width in columns. A Width of zero marks the
// continuation of a wide cluster in the cell to its left.
type Cell struct {
	Content string
	Width   int
	Style   style.Style
}

// blank is the cell returned for positions that were never written.
var blank = Cell{Content: " ", Width: 1}

// Screen is a grow-on-write grid of cells. It is not safe for
// concurrent use; a screen belongs to the renderer that fills it.
type Screen struct {
	rows [][]Cell

	// zeroWidth holds escape sequences that occupy no columns but must
	// be written to the terminal before the cell at their position.
	zeroWidth map[Point]string

	cursorPositions map[WindowID]Point
	writePositions  map[WindowID]WritePosition

	// ShowCursor reports whether the terminal cursor should be
	// visible after this screen is shown.
	ShowCursor bool
}

// New returns an empty screen.
func New() *Screen {
	return &Screen{
		zeroWidth:       make(map[Point]string),
		cursorPositions: make(map[WindowID]Point),
		writePositions:  make(map[WindowID]WritePosition),
		ShowCursor:      true,
	}
}

// Cell returns the cell at (x, y). Unwritten positions read as a
// default-styled space.
func (s *Screen) Cell(x, y int) Cell {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return blank
	}
	return s.rows[y][x]
}

// SetCell stores c at (x, y), growing the grid as needed. Negative
// coordinates are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || y < 0 {
		return
	}
	for len(s.rows) <= y {
		s.rows = append(s.rows, nil)
	}
	row := s.rows[y]
	for len(row) <= x {
		row = append(row, blank)
	}
	row[x] = c
	s.rows[y] = row
}

// Width returns the number of columns in the widest written row.
func (s *Screen) Width() int {
	w := 0
	for _, row := range s.rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows written so far.
func (s *Screen) Height() int {
	return len(s.rows)
}

// AppendZeroWidthEscape records an escape sequence to be emitted
// before the cell at (x, y). Multiple appends concatenate in order.
func (s *Screen) AppendZeroWidthEscape(x, y int, esc string) {
	p := Point{X: x, Y: y}
	s.zeroWidth[p] += esc
}

// ZeroWidthEscape returns the escape text recorded at (x, y), or the
// empty string.
func (s *Screen) ZeroWidthEscape(x, y int) string {
	return s.zeroWidth[Point{X: x, Y: y}]
}

// SetCursorPosition records where window id wants the cursor.
func (s *Screen) SetCursorPosition(id WindowID, p Point) {
	s.cursorPositions[id] = p
}

// CursorPosition returns the cursor position recorded for window id.
func (s *Screen) CursorPosition(id WindowID) (Point, bool) {
	p, ok := s.cursorPositions[id]
	return p, ok
}

// SetWritePosition records the rectangle window id rendered into.
func (s *Screen) SetWritePosition(id WindowID, wp WritePosition) {
	s.writePositions[id] = wp
}

// WritePosition returns the rectangle recorded for window id.
func (s *Screen) WritePosition(id WindowID) (WritePosition, bool) {
	wp, ok := s.writePositions[id]
	return wp, ok
}

// WindowIDs returns the windows that recorded a write position, in no
// particular order.
func (s *Screen) WindowIDs() []WindowID {
	ids := make([]WindowID, 0, len(s.writePositions))
	for id := range s.writePositions {
		ids = append(ids, id)
	}
	return ids
}

// WriteText writes styled fragments starting at (x, y) and returns the
// position after the last written cell. Text is split into grapheme
// clusters; wide clusters occupy their width in columns with
// zero-width continuation cells after the first. Newlines advance to
// the start of the next row. Zero-width fragments are recorded as
// escapes at the current position.
func (s *Screen) WriteText(x, y int, frags text.Fragments) Point {
	for _, f := range frags {
		if f.ZeroWidth {
			s.AppendZeroWidthEscape(x, y, f.Text)
			continue
		}
		g := uniseg.NewGraphemes(f.Text)
		for g.Next() {
			cluster := g.Str()
			if strings.ContainsRune(cluster, '\n') {
				x = 0
				y++
				continue
			}
			w := runewidth.StringWidth(cluster)
			if w == 0 {
				continue
			}
			s.SetCell(x, y, Cell{Content: cluster, Width: w, Style: f.Style})
			for i := 1; i < w; i++ {
				s.SetCell(x+i, y, Cell{Width: 0, Style: f.Style})
			}
			x += w
		}
	}
	return Point{X: x, Y: y}
}
