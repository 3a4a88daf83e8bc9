package keys

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "Escape"},
		{KeyUp, "Up"},
		{KeyF12, "F12"},
		{KeyBackTab, "BackTab"},
		{KeyCPRResponse, "CPRResponse"},
		{KeyMouseEvent, "MouseEvent"},
		{Key(999), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d): expected %q, got %q", tt.key, tt.want, got)
		}
	}
}

func TestKeyIsSpecial(t *testing.T) {
	if !KeyEscape.IsSpecial() {
		t.Error("Escape should be special")
	}
	if KeyRune.IsSpecial() {
		t.Error("Rune should not be special")
	}
	if KeyNone.IsSpecial() {
		t.Error("None should not be special")
	}
}

func TestModifierString(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("expected Ctrl+Shift, got %q", got)
	}
	if ModNone.String() != "" {
		t.Error("ModNone should render empty")
	}
}

func TestKeyPressString(t *testing.T) {
	tests := []struct {
		press KeyPress
		want  string
	}{
		{NewRunePress('a'), "a"},
		{NewSpecialPress(KeyUp, "\x1b[A"), "Up"},
		{KeyPress{Key: KeyRune, Rune: 'c', Mods: ModCtrl, Data: "\x03"}, "Ctrl+c"},
		{KeyPress{Key: KeyUp, Mods: ModAlt, Data: "\x1b[1;3A"}, "Alt+Up"},
	}

	for _, tt := range tests {
		if got := tt.press.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestNewRunePressData(t *testing.T) {
	p := NewRunePress('x')
	if p.Data != "x" {
		t.Errorf("expected data 'x', got %q", p.Data)
	}
	if !p.IsRune() {
		t.Error("rune press should report IsRune")
	}
}
