package vt100

import "github.com/dshills/termio/keys"

// stroke is one keypress produced by a matched input sequence. A
// sequence may expand to several strokes (Alt-modified sequences
// deliver Escape followed by the key, the way terminals encode Meta).
type stroke struct {
	key  keys.Key
	r    rune
	mods keys.Modifier
}

func special(k keys.Key) []stroke {
	return []stroke{{key: k}}
}

func ctrl(r rune) []stroke {
	return []stroke{{key: keys.KeyRune, r: r, mods: keys.ModCtrl}}
}

func modified(k keys.Key, mods keys.Modifier) []stroke {
	return []stroke{{key: k, mods: mods}}
}

func escThen(k keys.Key) []stroke {
	return []stroke{{key: keys.KeyEscape}, {key: k}}
}

func escThenMod(k keys.Key, mods keys.Modifier) []stroke {
	return []stroke{{key: keys.KeyEscape}, {key: k, mods: mods}}
}

// sequences maps byte-exact VT100/xterm input sequences to the
// keypresses they decode to. The table must match what real terminal
// emulators send; entries are grouped the way the emulators group them.
var sequences = map[string][]stroke{
	// Control characters.
	"\x00": ctrl(' '),
	"\x01": ctrl('a'),
	"\x02": ctrl('b'),
	"\x03": ctrl('c'),
	"\x04": ctrl('d'),
	"\x05": ctrl('e'),
	"\x06": ctrl('f'),
	"\x07": ctrl('g'),
	"\x08": special(keys.KeyBackspace), // Ctrl-H
	"\x09": special(keys.KeyTab),       // Ctrl-I
	"\x0a": ctrl('j'),
	"\x0b": ctrl('k'),
	"\x0c": ctrl('l'),
	"\x0d": special(keys.KeyEnter), // Ctrl-M
	"\x0e": ctrl('n'),
	"\x0f": ctrl('o'),
	"\x10": ctrl('p'),
	"\x11": ctrl('q'),
	"\x12": ctrl('r'),
	"\x13": ctrl('s'),
	"\x14": ctrl('t'),
	"\x15": ctrl('u'),
	"\x16": ctrl('v'),
	"\x17": ctrl('w'),
	"\x18": ctrl('x'),
	"\x19": ctrl('y'),
	"\x1a": ctrl('z'),
	"\x1b": special(keys.KeyEscape),
	"\x1c": ctrl('\\'),
	"\x1d": ctrl(']'),
	"\x1e": ctrl('^'),
	"\x1f": ctrl('_'),
	"\x7f": special(keys.KeyBackspace),

	// Cursor keys, CSI form.
	"\x1b[A": special(keys.KeyUp),
	"\x1b[B": special(keys.KeyDown),
	"\x1b[C": special(keys.KeyRight),
	"\x1b[D": special(keys.KeyLeft),
	"\x1b[H": special(keys.KeyHome),
	"\x1b[F": special(keys.KeyEnd),
	"\x1b[Z": special(keys.KeyBackTab), // Shift-Tab

	// Cursor keys, SS3 form (application mode).
	"\x1bOA": special(keys.KeyUp),
	"\x1bOB": special(keys.KeyDown),
	"\x1bOC": special(keys.KeyRight),
	"\x1bOD": special(keys.KeyLeft),
	"\x1bOH": special(keys.KeyHome),
	"\x1bOF": special(keys.KeyEnd),

	// Editing keys.
	"\x1b[1~": special(keys.KeyHome),
	"\x1b[2~": special(keys.KeyInsert),
	"\x1b[3~": special(keys.KeyDelete),
	"\x1b[4~": special(keys.KeyEnd),
	"\x1b[5~": special(keys.KeyPageUp),
	"\x1b[6~": special(keys.KeyPageDown),
	"\x1b[7~": special(keys.KeyHome),
	"\x1b[8~": special(keys.KeyEnd),

	// Function keys, SS3 form.
	"\x1bOP": special(keys.KeyF1),
	"\x1bOQ": special(keys.KeyF2),
	"\x1bOR": special(keys.KeyF3),
	"\x1bOS": special(keys.KeyF4),

	// Function keys, CSI form.
	"\x1b[11~": special(keys.KeyF1),
	"\x1b[12~": special(keys.KeyF2),
	"\x1b[13~": special(keys.KeyF3),
	"\x1b[14~": special(keys.KeyF4),
	"\x1b[15~": special(keys.KeyF5),
	"\x1b[17~": special(keys.KeyF6),
	"\x1b[18~": special(keys.KeyF7),
	"\x1b[19~": special(keys.KeyF8),
	"\x1b[20~": special(keys.KeyF9),
	"\x1b[21~": special(keys.KeyF10),
	"\x1b[23~": special(keys.KeyF11),
	"\x1b[24~": special(keys.KeyF12),
	"\x1b[25~": special(keys.KeyF13),
	"\x1b[26~": special(keys.KeyF14),
	"\x1b[28~": special(keys.KeyF15),
	"\x1b[29~": special(keys.KeyF16),
	"\x1b[31~": special(keys.KeyF17),
	"\x1b[32~": special(keys.KeyF18),
	"\x1b[33~": special(keys.KeyF19),
	"\x1b[34~": special(keys.KeyF20),

	// Shifted function keys; xterm reports them as the next bank.
	// ESC [ 1 ; 2 R is missing on purpose: it collides with a cursor
	// position report.
	"\x1b[1;2P":  special(keys.KeyF13),
	"\x1b[1;2Q":  special(keys.KeyF14),
	"\x1b[1;2S":  special(keys.KeyF16),
	"\x1b[15;2~": special(keys.KeyF17),
	"\x1b[17;2~": special(keys.KeyF18),
	"\x1b[18;2~": special(keys.KeyF19),
	"\x1b[19;2~": special(keys.KeyF20),
	"\x1b[20;2~": special(keys.KeyF21),
	"\x1b[21;2~": special(keys.KeyF22),
	"\x1b[23;2~": special(keys.KeyF23),
	"\x1b[24;2~": special(keys.KeyF24),

	// Numpad center in some emulators; consumed without effect.
	"\x1b[E": special(keys.KeyIgnore),

	// xterm modifier variants: ESC [ 1 ; <mod> <final>.
	// 2 = Shift, 3 = Alt, 4 = Alt+Shift, 5 = Ctrl, 6 = Ctrl+Shift,
	// 7 = Ctrl+Alt, 8 = Ctrl+Alt+Shift. Alt expands to Escape + key.
	"\x1b[1;2A": modified(keys.KeyUp, keys.ModShift),
	"\x1b[1;2B": modified(keys.KeyDown, keys.ModShift),
	"\x1b[1;2C": modified(keys.KeyRight, keys.ModShift),
	"\x1b[1;2D": modified(keys.KeyLeft, keys.ModShift),
	"\x1b[1;3A": escThen(keys.KeyUp),
	"\x1b[1;3B": escThen(keys.KeyDown),
	"\x1b[1;3C": escThen(keys.KeyRight),
	"\x1b[1;3D": escThen(keys.KeyLeft),
	"\x1b[1;4A": escThenMod(keys.KeyUp, keys.ModShift),
	"\x1b[1;4B": escThenMod(keys.KeyDown, keys.ModShift),
	"\x1b[1;4C": escThenMod(keys.KeyRight, keys.ModShift),
	"\x1b[1;4D": escThenMod(keys.KeyLeft, keys.ModShift),
	"\x1b[1;5A": modified(keys.KeyUp, keys.ModCtrl),
	"\x1b[1;5B": modified(keys.KeyDown, keys.ModCtrl),
	"\x1b[1;5C": modified(keys.KeyRight, keys.ModCtrl),
	"\x1b[1;5D": modified(keys.KeyLeft, keys.ModCtrl),
	"\x1b[1;6A": modified(keys.KeyUp, keys.ModCtrl|keys.ModShift),
	"\x1b[1;6B": modified(keys.KeyDown, keys.ModCtrl|keys.ModShift),
	"\x1b[1;6C": modified(keys.KeyRight, keys.ModCtrl|keys.ModShift),
	"\x1b[1;6D": modified(keys.KeyLeft, keys.ModCtrl|keys.ModShift),
	"\x1b[1;7A": escThenMod(keys.KeyUp, keys.ModCtrl),
	"\x1b[1;7B": escThenMod(keys.KeyDown, keys.ModCtrl),
	"\x1b[1;7C": escThenMod(keys.KeyRight, keys.ModCtrl),
	"\x1b[1;7D": escThenMod(keys.KeyLeft, keys.ModCtrl),
	"\x1b[1;8A": escThenMod(keys.KeyUp, keys.ModCtrl|keys.ModShift),
	"\x1b[1;8B": escThenMod(keys.KeyDown, keys.ModCtrl|keys.ModShift),
	"\x1b[1;8C": escThenMod(keys.KeyRight, keys.ModCtrl|keys.ModShift),
	"\x1b[1;8D": escThenMod(keys.KeyLeft, keys.ModCtrl|keys.ModShift),

	// Home and End with modifiers.
	"\x1b[1;2H": modified(keys.KeyHome, keys.ModShift),
	"\x1b[1;2F": modified(keys.KeyEnd, keys.ModShift),
	"\x1b[1;3H": escThen(keys.KeyHome),
	"\x1b[1;3F": escThen(keys.KeyEnd),
	"\x1b[1;5H": modified(keys.KeyHome, keys.ModCtrl),
	"\x1b[1;5F": modified(keys.KeyEnd, keys.ModCtrl),
	"\x1b[1;6H": modified(keys.KeyHome, keys.ModCtrl|keys.ModShift),
	"\x1b[1;6F": modified(keys.KeyEnd, keys.ModCtrl|keys.ModShift),
	"\x1b[1;2~": modified(keys.KeyHome, keys.ModShift),
	"\x1b[1;5~": modified(keys.KeyHome, keys.ModCtrl),
	"\x1b[1;6~": modified(keys.KeyHome, keys.ModCtrl|keys.ModShift),
	"\x1b[4;2~": modified(keys.KeyEnd, keys.ModShift),
	"\x1b[4;5~": modified(keys.KeyEnd, keys.ModCtrl),
	"\x1b[4;6~": modified(keys.KeyEnd, keys.ModCtrl|keys.ModShift),

	// Editing keys with modifiers.
	"\x1b[2;3~": escThen(keys.KeyInsert),
	"\x1b[3;2~": modified(keys.KeyDelete, keys.ModShift),
	"\x1b[3;3~": escThen(keys.KeyDelete),
	"\x1b[3;5~": modified(keys.KeyDelete, keys.ModCtrl),
	"\x1b[5;3~": escThen(keys.KeyPageUp),
	"\x1b[5;5~": modified(keys.KeyPageUp, keys.ModCtrl),
	"\x1b[6;3~": escThen(keys.KeyPageDown),
	"\x1b[6;5~": modified(keys.KeyPageDown, keys.ModCtrl),
}
