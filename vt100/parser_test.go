package vt100

import (
	"reflect"
	"testing"

	"github.com/dshills/termio/keys"
)

func collect(t *testing.T) (*Parser, *[]keys.KeyPress) {
	t.Helper()
	var got []keys.KeyPress
	p := NewParser(func(kp keys.KeyPress) {
		got = append(got, kp)
	})
	return p, &got
}

func keysOf(presses []keys.KeyPress) []keys.Key {
	out := make([]keys.Key, len(presses))
	for i, kp := range presses {
		out[i] = kp.Key
	}
	return out
}

func TestParserPlainText(t *testing.T) {
	p, got := collect(t)
	p.Feed("hi")

	if len(*got) != 2 {
		t.Fatalf("expected 2 keypresses, got %d", len(*got))
	}
	for i, want := range []rune{'h', 'i'} {
		kp := (*got)[i]
		if kp.Key != keys.KeyRune || kp.Rune != want {
			t.Errorf("press %d = %v, want rune %q", i, kp, want)
		}
	}
}

func TestParserArrowKey(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[A")

	if len(*got) != 1 {
		t.Fatalf("expected 1 keypress, got %d: %v", len(*got), *got)
	}
	kp := (*got)[0]
	if kp.Key != keys.KeyUp {
		t.Errorf("key = %v, want Up", kp.Key)
	}
	if kp.Data != "\x1b[A" {
		t.Errorf("data = %q, want the full sequence", kp.Data)
	}
}

func TestParserChunkingInvariance(t *testing.T) {
	const input = "a\x1b[Bb\x1b[11~\x0d"
	want := []keys.Key{keys.KeyRune, keys.KeyDown, keys.KeyRune, keys.KeyF1, keys.KeyEnter}

	splits := [][]string{
		{input},
		{"a\x1b", "[Bb\x1b[1", "1~\x0d"},
		{"a", "\x1b", "[", "B", "b", "\x1b", "[", "1", "1", "~", "\x0d"},
	}
	for i, chunks := range splits {
		p, got := collect(t)
		for _, c := range chunks {
			p.Feed(c)
		}
		p.Flush()
		if !reflect.DeepEqual(keysOf(*got), want) {
			t.Errorf("split %d: keys = %v, want %v", i, keysOf(*got), want)
		}
	}
}

func TestParserEscapeHeldUntilFlush(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b")

	if len(*got) != 0 {
		t.Fatalf("escape emitted before flush: %v", *got)
	}
	p.Flush()
	if len(*got) != 1 || (*got)[0].Key != keys.KeyEscape {
		t.Fatalf("after flush got %v, want a single Escape", *got)
	}
}

func TestParserEscapeThenText(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1bx")

	want := []keys.Key{keys.KeyEscape, keys.KeyRune}
	if !reflect.DeepEqual(keysOf(*got), want) {
		t.Fatalf("keys = %v, want %v", keysOf(*got), want)
	}
	if (*got)[1].Rune != 'x' {
		t.Errorf("second rune = %q, want 'x'", (*got)[1].Rune)
	}
}

func TestParserControlKeys(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x03\x09\x7f")

	if len(*got) != 3 {
		t.Fatalf("expected 3 keypresses, got %d", len(*got))
	}
	if kp := (*got)[0]; kp.Key != keys.KeyRune || kp.Rune != 'c' || !kp.Mods.HasCtrl() {
		t.Errorf("first press = %v, want Ctrl+c", kp)
	}
	if (*got)[1].Key != keys.KeyTab {
		t.Errorf("second press = %v, want Tab", (*got)[1])
	}
	if (*got)[2].Key != keys.KeyBackspace {
		t.Errorf("third press = %v, want Backspace", (*got)[2])
	}
}

func TestParserCursorPositionReport(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[12;40R")

	if len(*got) != 1 || (*got)[0].Key != keys.KeyCPRResponse {
		t.Fatalf("got %v, want a single CPR response", *got)
	}
	if (*got)[0].Data != "\x1b[12;40R" {
		t.Errorf("data = %q, want the raw report", (*got)[0].Data)
	}
}

func TestParserSGRMouseEvent(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[<0;10;20M")

	if len(*got) != 1 || (*got)[0].Key != keys.KeyMouseEvent {
		t.Fatalf("got %v, want a single mouse event", *got)
	}
}

func TestParserLegacyMouseEvent(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[M !!")

	if len(*got) != 1 || (*got)[0].Key != keys.KeyMouseEvent {
		t.Fatalf("got %v, want a single mouse event", *got)
	}
}

func TestParserAltArrowExpansion(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[1;3A")

	want := []keys.Key{keys.KeyEscape, keys.KeyUp}
	if !reflect.DeepEqual(keysOf(*got), want) {
		t.Fatalf("keys = %v, want %v", keysOf(*got), want)
	}
}

func TestParserModifiedArrow(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[1;5C")

	if len(*got) != 1 {
		t.Fatalf("expected 1 keypress, got %d: %v", len(*got), *got)
	}
	kp := (*got)[0]
	if kp.Key != keys.KeyRight || !kp.Mods.HasCtrl() {
		t.Errorf("press = %v, want Ctrl+Right", kp)
	}
}

func TestParserDeadPrefixCascade(t *testing.T) {
	// ESC [ q is not a known sequence. The shed ESC resolves through
	// the table, the rest comes out as literal runes.
	p, got := collect(t)
	p.FeedAndFlush("\x1b[q")

	want := []keys.Key{keys.KeyEscape, keys.KeyRune, keys.KeyRune}
	if !reflect.DeepEqual(keysOf(*got), want) {
		t.Fatalf("keys = %v, want %v", keysOf(*got), want)
	}
	if (*got)[1].Rune != '[' || (*got)[2].Rune != 'q' {
		t.Errorf("literal runes = %q %q, want '[' 'q'", (*got)[1].Rune, (*got)[2].Rune)
	}
}

func TestParserFlushDrainsBuffer(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[1;")
	if len(*got) != 0 {
		t.Fatalf("partial sequence emitted early: %v", *got)
	}

	p.Flush()
	want := []keys.Key{keys.KeyEscape, keys.KeyRune, keys.KeyRune, keys.KeyRune}
	if !reflect.DeepEqual(keysOf(*got), want) {
		t.Fatalf("keys = %v, want %v", keysOf(*got), want)
	}
}

func TestParserReset(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[")
	p.Reset()
	p.Flush()

	if len(*got) != 0 {
		t.Fatalf("reset buffer still emitted: %v", *got)
	}
}

func TestParserExtendedFunctionKeys(t *testing.T) {
	tests := []struct {
		in   string
		want keys.Key
	}{
		{"\x1b[25~", keys.KeyF13},
		{"\x1b[34~", keys.KeyF20},
		{"\x1b[1;2P", keys.KeyF13},
		{"\x1b[15;2~", keys.KeyF17},
		{"\x1b[24;2~", keys.KeyF24},
	}
	for _, tt := range tests {
		p, got := collect(t)
		p.Feed(tt.in)
		if len(*got) != 1 || (*got)[0].Key != tt.want {
			t.Errorf("%q: got %v, want a single %v", tt.in, *got, tt.want)
		}
	}
}

func TestParserCombinedModifiers(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[1;6C")

	if len(*got) != 1 {
		t.Fatalf("expected 1 keypress, got %d: %v", len(*got), *got)
	}
	kp := (*got)[0]
	if kp.Key != keys.KeyRight || !kp.Mods.HasCtrl() || !kp.Mods.HasShift() {
		t.Errorf("press = %v, want Ctrl+Shift+Right", kp)
	}

	p2, got2 := collect(t)
	p2.Feed("\x1b[1;7D")
	want := []keys.Key{keys.KeyEscape, keys.KeyLeft}
	if !reflect.DeepEqual(keysOf(*got2), want) {
		t.Fatalf("keys = %v, want %v", keysOf(*got2), want)
	}
	if !(*got2)[1].Mods.HasCtrl() {
		t.Errorf("second press mods = %v, want Ctrl", (*got2)[1].Mods)
	}
}

func TestParserModifiedHomeEnd(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[1;5~\x1b[4;2~")

	if len(*got) != 2 {
		t.Fatalf("expected 2 keypresses, got %d: %v", len(*got), *got)
	}
	if kp := (*got)[0]; kp.Key != keys.KeyHome || !kp.Mods.HasCtrl() {
		t.Errorf("first press = %v, want Ctrl+Home", kp)
	}
	if kp := (*got)[1]; kp.Key != keys.KeyEnd || !kp.Mods.HasShift() {
		t.Errorf("second press = %v, want Shift+End", kp)
	}
}

func TestParserShiftedF15FormStaysCPR(t *testing.T) {
	// ESC [ 1 ; 2 R is indistinguishable from a cursor position
	// report and must decode as one.
	p, got := collect(t)
	p.Feed("\x1b[1;2R")

	if len(*got) != 1 || (*got)[0].Key != keys.KeyCPRResponse {
		t.Fatalf("got %v, want a single CPR response", *got)
	}
}

func TestParserBackTab(t *testing.T) {
	p, got := collect(t)
	p.Feed("\x1b[Z")

	if len(*got) != 1 || (*got)[0].Key != keys.KeyBackTab {
		t.Fatalf("got %v, want a single BackTab", *got)
	}
}

func TestParserUnicodeText(t *testing.T) {
	p, got := collect(t)
	p.Feed("héλ")

	if len(*got) != 3 {
		t.Fatalf("expected 3 keypresses, got %d", len(*got))
	}
	for i, want := range []rune{'h', 'é', 'λ'} {
		if kp := (*got)[i]; kp.Key != keys.KeyRune || kp.Rune != want {
			t.Errorf("press %d = %v, want rune %q", i, kp, want)
		}
	}
}
