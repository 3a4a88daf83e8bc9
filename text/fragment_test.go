package text

import (
	"testing"

	"github.com/dshills/termio/style"
)

func TestPlainText(t *testing.T) {
	f := Fragments{
		{Text: "hello "},
		{Text: "\x1b]133;A\x07", ZeroWidth: true},
		{Style: style.Style{Foreground: style.ColorRed}, Text: "world"},
	}

	if got := f.PlainText(); got != "hello world" {
		t.Errorf("expected 'hello world', got %q", got)
	}
}

func TestMerge(t *testing.T) {
	a := Plain("one")
	b := Styled("two", style.Style{Foreground: style.ColorGreen})

	merged := Merge(a, nil, b)
	if len(merged) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(merged))
	}
	if merged[0].Text != "one" || merged[1].Text != "two" {
		t.Errorf("unexpected merge order: %v", merged)
	}

	// Inputs are not mutated.
	if len(a) != 1 || len(b) != 1 {
		t.Error("merge should not modify inputs")
	}
}

func TestApplyStyle(t *testing.T) {
	base := style.Style{Foreground: style.ColorBlue, Attributes: style.AttrBold}
	f := Fragments{
		{Text: "plain"},
		{Style: style.Style{Foreground: style.ColorRed}, Text: "red"},
		{Text: "zw", ZeroWidth: true},
	}

	out := f.ApplyStyle(base)

	if out[0].Style.Foreground != style.ColorBlue {
		t.Errorf("unset foreground should inherit base, got %q", out[0].Style.Foreground)
	}
	if out[1].Style.Foreground != style.ColorRed {
		t.Errorf("set foreground should win over base, got %q", out[1].Style.Foreground)
	}
	if !out[1].Style.Attributes.Has(style.AttrBold) {
		t.Error("attributes should merge from base")
	}
	if out[2].Style != (style.Style{}) {
		t.Error("zero-width fragments should be left alone")
	}

	// Original is untouched.
	if f[0].Style.Foreground != style.ColorDefault {
		t.Error("ApplyStyle must not mutate its receiver")
	}
}

func TestPlainEmpty(t *testing.T) {
	if Plain("") != nil {
		t.Error("empty string should produce no fragments")
	}
	if Styled("", style.Style{}) != nil {
		t.Error("empty styled string should produce no fragments")
	}
}
