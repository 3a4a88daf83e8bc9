package ansi

import (
	"testing"

	"github.com/dshills/termio/style"
)

func TestDecodeRedThenPlain(t *testing.T) {
	frags := Decode("\x1b[31mred\x1b[0m plain")

	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %#v", len(frags), frags)
	}
	if frags[0].Text != "red" || frags[0].Style.Foreground != style.ColorRed {
		t.Errorf("expected red fragment, got %#v", frags[0])
	}
	if frags[1].Text != " plain" || !frags[1].Style.IsDefault() {
		t.Errorf("expected default-styled trailing fragment, got %#v", frags[1])
	}
}

func TestDecodeTrailingRunFlushed(t *testing.T) {
	frags := Decode("no escapes at all")

	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].Text != "no escapes at all" {
		t.Errorf("trailing run was dropped: %#v", frags)
	}
}

func TestDecodeCumulativeAttributes(t *testing.T) {
	frags := Decode("\x1b[1mbold\x1b[4mboth\x1b[22munder")

	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %#v", len(frags), frags)
	}
	if !frags[0].Style.Attributes.Has(style.AttrBold) {
		t.Error("first fragment should be bold")
	}
	if !frags[1].Style.Attributes.Has(style.AttrBold) ||
		!frags[1].Style.Attributes.Has(style.AttrUnderline) {
		t.Error("second fragment should accumulate bold and underline")
	}
	if frags[2].Style.Attributes.Has(style.AttrBold) {
		t.Error("SGR 22 should clear bold")
	}
	if !frags[2].Style.Attributes.Has(style.AttrUnderline) {
		t.Error("SGR 22 should leave underline set")
	}
}

func TestDecodeCombinedParams(t *testing.T) {
	frags := Decode("\x1b[1;31;44mx")

	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	st := frags[0].Style
	if st.Foreground != style.ColorRed || st.Background != style.ColorBlue ||
		!st.Attributes.Has(style.AttrBold) {
		t.Errorf("unexpected style: %s", st)
	}
}

func TestDecodeBrightColors(t *testing.T) {
	frags := Decode("\x1b[91mhi")
	if frags[0].Style.Foreground != style.Color("ansibrightred") {
		t.Errorf("expected ansibrightred, got %q", frags[0].Style.Foreground)
	}
}

func TestDecode256Color(t *testing.T) {
	frags := Decode("\x1b[38;5;196mhot")
	if frags[0].Style.Foreground != style.Color("#ff0000") {
		t.Errorf("expected #ff0000, got %q", frags[0].Style.Foreground)
	}
}

func TestDecodeTrueColor(t *testing.T) {
	frags := Decode("\x1b[48;2;16;32;48mbg")
	if frags[0].Style.Background != style.Color("#102030") {
		t.Errorf("expected #102030, got %q", frags[0].Style.Background)
	}
}

func TestDecodeZeroWidthZone(t *testing.T) {
	frags := Decode("before\x01\x1b]133;A\x07\x02after")

	if len(frags) != 3 {
		t.Fatalf("expected 3 fragments, got %d: %#v", len(frags), frags)
	}
	if frags[0].Text != "before" || frags[0].ZeroWidth {
		t.Errorf("unexpected first fragment: %#v", frags[0])
	}
	if !frags[1].ZeroWidth || frags[1].Text != "\x1b]133;A\x07" {
		t.Errorf("zero-width zone not captured verbatim: %#v", frags[1])
	}
	if frags[2].Text != "after" || frags[2].ZeroWidth {
		t.Errorf("unexpected last fragment: %#v", frags[2])
	}
}

func TestDecodeZeroWidthExcludedFromPlainText(t *testing.T) {
	frags := Decode("a\x01ZW\x02b")
	if got := frags.PlainText(); got != "ab" {
		t.Errorf("expected plain text 'ab', got %q", got)
	}
}

func TestDecodeUnknownSequenceIgnored(t *testing.T) {
	// Cursor movement is not SGR; style must be unaffected.
	frags := Decode("\x1b[2Avisible")

	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if !frags[0].Style.IsDefault() {
		t.Errorf("non-SGR sequence changed style: %s", frags[0].Style)
	}
	if frags[0].Text != "visible" {
		t.Errorf("expected 'visible', got %q", frags[0].Text)
	}
}

func TestDecodeEmptyParamIsReset(t *testing.T) {
	frags := Decode("\x1b[31mx\x1b[my")
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if !frags[1].Style.IsDefault() {
		t.Error("empty SGR parameter list should reset the style")
	}
}

func TestDecodeUnterminatedEscapeDiscarded(t *testing.T) {
	frags := Decode("ok\x1b[31")
	if len(frags) != 1 || frags[0].Text != "ok" {
		t.Errorf("unterminated escape should be discarded, got %#v", frags)
	}
}

func TestEscape(t *testing.T) {
	if got := Escape("a\x1b[31mb\bc"); got != "a?[31mb?c" {
		t.Errorf("expected control characters replaced, got %q", got)
	}
}

func TestFormatEscapesArguments(t *testing.T) {
	frags := Format("\x1b[32m%s\x1b[0m", "evil\x1b[31mred")

	// The injected escape must arrive as literal text, still green.
	var combined string
	for _, f := range frags {
		if f.Style.Foreground == style.ColorRed {
			t.Errorf("injected escape changed styling: %#v", frags)
		}
		combined += f.Text
	}
	if combined != "evil?[31mred" {
		t.Errorf("expected escaped interpolation, got %q", combined)
	}
}

func TestFormatNonStringArg(t *testing.T) {
	frags := Format("%d items", 42)
	if got := frags.PlainText(); got != "42 items" {
		t.Errorf("expected '42 items', got %q", got)
	}
}
