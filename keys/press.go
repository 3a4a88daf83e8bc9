package keys

import "fmt"

// KeyPress is a single decoded keypress. Data holds the raw input
// that produced the event and is never empty for delivered presses.
// KeyPress values are immutable once created.
type KeyPress struct {
	// Key identifies the key pressed. Character keys use KeyRune.
	Key Key

	// Rune is the character for KeyRune presses.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier

	// Data is the raw input text that matched this press.
	Data string
}

// NewRunePress creates a keypress for a literal character.
func NewRunePress(r rune) KeyPress {
	return KeyPress{Key: KeyRune, Rune: r, Data: string(r)}
}

// NewSpecialPress creates a keypress for a special key.
func NewSpecialPress(key Key, data string) KeyPress {
	return KeyPress{Key: key, Data: data}
}

// IsRune returns true if this is a character keypress.
func (p KeyPress) IsRune() bool {
	return p.Key == KeyRune && p.Rune != 0
}

// String returns a canonical representation such as "a", "Ctrl+c",
// "Alt+Up" or "Escape".
func (p KeyPress) String() string {
	var name string
	if p.Key == KeyRune {
		name = string(p.Rune)
	} else {
		name = p.Key.String()
	}
	if p.Mods != ModNone {
		return p.Mods.String() + "+" + name
	}
	return name
}

// GoString implements fmt.GoStringer for readable test failures.
func (p KeyPress) GoString() string {
	return fmt.Sprintf("KeyPress{%s, data=%q}", p.String(), p.Data)
}
