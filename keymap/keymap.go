// Package keymap translates host keyboard input into C64 keyboard
// matrix positions. The matrix is 8x8, wired active-low into CIA1;
// CIA.SetKey(row, col, pressed) is how a position lands on the chip.
package keymap

import "github.com/hajimehoshi/ebiten/v2"

// Position is a (row, col) cell in the 8x8 keyboard matrix.
type Position struct {
	Row, Col uint8
}

// shift is the Left Shift matrix position, reused to synthesize the
// shifted half of every punctuation combo below.
var shift = Position{1, 7}

// special maps host keys with no printable rune of their own to their
// C64 matrix position(s).
var special = map[ebiten.Key][]Position{
	ebiten.KeyBackspace:  {{0, 0}}, // DEL
	ebiten.KeyEnter:      {{0, 1}}, // RETURN
	ebiten.KeyArrowRight: {{0, 2}},
	ebiten.KeyF7:         {{0, 3}},
	ebiten.KeyF1:         {{0, 4}},
	ebiten.KeyF3:         {{0, 5}},
	ebiten.KeyF5:         {{0, 6}},
	ebiten.KeyArrowDown:  {{0, 7}},
	ebiten.KeyHome:       {{6, 3}},
	ebiten.KeyArrowUp:    {{6, 6}}, // C64's ↑
	ebiten.KeyArrowLeft:  {{7, 1}}, // cursor left
	ebiten.KeyTab:        {{7, 7}}, // RUN/STOP
}

// chars maps a printable rune, as produced by a host key (optionally
// with its own Shift held), to its C64 matrix position(s). Symbols
// that the C64 keyboard only reaches via Shift carry the Left Shift
// position alongside the base key, exactly as a physical C64 keyboard
// would report them.
var chars = map[rune][]Position{
	'3': {{1, 0}},
	'#': {shift, {1, 0}},
	'w': {{1, 1}}, 'W': {{1, 1}},
	'a': {{1, 2}}, 'A': {{1, 2}},
	'4': {{1, 3}},
	'$': {shift, {1, 3}},
	'z': {{1, 4}}, 'Z': {{1, 4}},
	's': {{1, 5}}, 'S': {{1, 5}},
	'e': {{1, 6}}, 'E': {{1, 6}},

	'5': {{2, 0}},
	'%': {shift, {2, 0}},
	'r': {{2, 1}}, 'R': {{2, 1}},
	'd': {{2, 2}}, 'D': {{2, 2}},
	'6': {{2, 3}},
	'&': {shift, {2, 3}},
	'c': {{2, 4}}, 'C': {{2, 4}},
	'f': {{2, 5}}, 'F': {{2, 5}},
	't': {{2, 6}}, 'T': {{2, 6}},
	'x': {{2, 7}}, 'X': {{2, 7}},

	'7': {{3, 0}},
	'\'': {shift, {3, 0}},
	'y': {{3, 1}}, 'Y': {{3, 1}},
	'g': {{3, 2}}, 'G': {{3, 2}},
	'8': {{3, 3}},
	'(': {shift, {3, 3}},
	'b': {{3, 4}}, 'B': {{3, 4}},
	'h': {{3, 5}}, 'H': {{3, 5}},
	'u': {{3, 6}}, 'U': {{3, 6}},
	'v': {{3, 7}}, 'V': {{3, 7}},

	'9': {{4, 0}},
	')': {shift, {4, 0}},
	'i': {{4, 1}}, 'I': {{4, 1}},
	'j': {{4, 2}}, 'J': {{4, 2}},
	'0': {{4, 3}},
	'm': {{4, 4}}, 'M': {{4, 4}},
	'k': {{4, 5}}, 'K': {{4, 5}},
	'o': {{4, 6}}, 'O': {{4, 6}},
	'n': {{4, 7}}, 'N': {{4, 7}},

	'+': {{5, 0}},
	'p': {{5, 1}}, 'P': {{5, 1}},
	'l': {{5, 2}}, 'L': {{5, 2}},
	'-': {{5, 3}},
	'.': {{5, 4}},
	'>': {shift, {5, 4}},
	':': {{5, 5}},
	'[': {shift, {5, 5}},
	'@': {{5, 6}},
	',': {{5, 7}},
	'<': {shift, {5, 7}},

	'*': {{6, 1}},
	';': {{6, 2}},
	']': {shift, {6, 2}},
	'=': {{6, 5}},
	'/': {{6, 7}},
	'?': {shift, {6, 7}},

	'1': {{7, 0}},
	'!': {shift, {7, 0}},
	'2': {{7, 3}},
	'"': {shift, {7, 3}},
	' ': {{7, 4}},
	'q': {{7, 6}}, 'Q': {{7, 6}},
}

// MapKey translates a non-printable host key (arrows, function keys,
// RETURN, DEL, RUN/STOP, HOME) to its matrix position(s). It returns
// nil for any key with no C64 equivalent, or one handled instead by
// MapChar.
func MapKey(key ebiten.Key) []Position {
	return special[key]
}

// MapChar translates an input rune, as produced by a host key (with
// its own Shift already folded in), to its matrix position(s),
// synthesizing the C64's own Shift press for symbols that require it.
func MapChar(r rune) []Position {
	return chars[r]
}
