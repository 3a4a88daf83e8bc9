package keys

import "strings"

// Modifier is a bitmask of modifier keys held during a keypress.
type Modifier uint8

// Modifier flags.
const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Has returns true if the modifier set contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new modifier set with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// HasShift returns true if Shift is in the set.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasAlt returns true if Alt is in the set.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasCtrl returns true if Ctrl is in the set.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// String returns the modifier names joined with "+", e.g. "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
