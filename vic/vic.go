// Package vic emulates the VIC-II video chip's text-mode character
// generator: the 64-register file, the 1000-byte color RAM bank it
// owns directly (not visible to the CPU as ordinary memory), and the
// raster beam timing used to drive the raster-compare interrupt.
// Sprites, bitmap modes, and smooth scrolling are out of scope.
package vic

// ScreenWidth and ScreenHeight are the C64's fixed text-mode
// dimensions: 40 columns by 25 rows.
const (
	ScreenWidth  = 40
	ScreenHeight = 25
)

// Register offsets of interest; the remaining 58 registers are plain
// storage with no read/write side effects modeled here.
const (
	RegControl1   = 0x11 // bit 7 = raster compare high bit
	RegRaster     = 0x12 // raster compare low byte / current raster line low byte
	RegIRQStatus  = 0x19
	RegIRQEnable  = 0x1A
	RegBorder     = 0x20
	RegBackground = 0x21
)

const (
	cyclesPerLine = 63
	linesPerFrame = 312
)

// VIC is one VIC-II chip instance. The zero value is not ready to
// use; call New.
type VIC struct {
	registers [64]uint8
	colorRAM  [ScreenWidth * ScreenHeight]uint8

	screenBase uint16

	cycleCount uint16
	RasterLine uint16
}

// New returns a VIC-II in its KERNAL-expected power-on state: screen
// memory at $0400, light blue border and color RAM, blue background, as the
// stock C64 boot screen shows before BASIC repaints it.
func New() *VIC {
	v := &VIC{screenBase: 0x0400}
	for i := range v.colorRAM {
		v.colorRAM[i] = 0x0E // light blue
	}
	v.registers[RegBorder] = 0x0E
	v.registers[RegBackground] = 0x06 // blue
	return v
}

// ReadRegister reads one of the 64 VIC-II registers, mirrored every
// 64 bytes across its $0400-byte I/O page. $D011 and $D012 combine to
// report the current raster line rather than a plain stored value.
func (v *VIC) ReadRegister(addr uint16) uint8 {
	reg := addr & 0x3F
	switch reg {
	case RegControl1:
		val := v.registers[RegControl1] & 0x7F
		if v.RasterLine > 0xFF {
			val |= 0x80
		}
		return val
	case RegRaster:
		return uint8(v.RasterLine)
	default:
		return v.registers[reg]
	}
}

// WriteRegister writes one of the 64 VIC-II registers. Border and
// background color writes are masked to their low nibble (C64 has
// only 16 on-screen colors); every other register is plain storage.
func (v *VIC) WriteRegister(addr uint16, val uint8) {
	reg := addr & 0x3F
	v.registers[reg] = val
	switch reg {
	case RegBorder:
		v.registers[RegBorder] = val & 0x0F
	case RegBackground:
		v.registers[RegBackground] = val & 0x0F
	}
}

// ReadColorRAM and WriteColorRAM access the 1000-byte color nibble
// array at $D800-$DBE7. Only the low nibble of each cell is
// meaningful; the upper nibble of real hardware is open-bus noise we
// don't model.
func (v *VIC) ReadColorRAM(offset uint16) uint8 {
	if int(offset) >= len(v.colorRAM) {
		return 0
	}
	return v.colorRAM[offset] & 0x0F
}

func (v *VIC) WriteColorRAM(offset uint16, val uint8) {
	if int(offset) >= len(v.colorRAM) {
		return
	}
	v.colorRAM[offset] = val & 0x0F
}

// BorderColor and BackgroundColor report the current border/background
// color index (0-15).
func (v *VIC) BorderColor() uint8     { return v.registers[RegBorder] }
func (v *VIC) BackgroundColor() uint8 { return v.registers[RegBackground] }

// Tick advances the raster beam by cycles clock cycles. Every time it
// crosses a full scanline (63 cycles) the raster line counter
// advances, wrapping at 312 lines (PAL), and the raster-compare
// interrupt is evaluated against the 9-bit value spread across $D012
// and bit 7 of $D011. It reports whether an enabled raster interrupt
// fired.
func (v *VIC) Tick(cycles uint8) (irq bool) {
	v.cycleCount += uint16(cycles)
	for v.cycleCount >= cyclesPerLine {
		v.cycleCount -= cyclesPerLine

		v.RasterLine++
		if v.RasterLine >= linesPerFrame {
			v.RasterLine = 0
		}

		compare := uint16(v.registers[RegRaster])
		if v.registers[RegControl1]&0x80 != 0 {
			compare |= 0x100
		}

		if v.RasterLine == compare {
			v.registers[RegIRQStatus] |= 0x01
			if v.registers[RegIRQEnable]&0x01 != 0 {
				irq = true
			}
		}
	}

	return irq
}

// PendingIRQ reports whether an enabled raster interrupt is latched in
// $D019 right now, regardless of which Tick call set it. Unlike Tick's
// return value (true only on the exact cycle the raster line matches),
// this is level-sensitive: it stays true until software acknowledges
// $D019, matching the VIC-II's own IRQ line behavior.
func (v *VIC) PendingIRQ() bool {
	return v.registers[RegIRQStatus]&v.registers[RegIRQEnable]&0x0F != 0
}

// Cell is a codec-layer read of one of the 40x25 screen cells: the
// screen code memory owns and the color nibble VIC owns directly.
type Cell struct {
	ScreenCode uint8
	Color      uint8
}

// GetCell reads the screen code at (x, y) from mem (the character RAM
// VIC scans lives in ordinary CPU-visible memory at screenBase) paired
// with the color RAM cell VIC owns for that position.
func (v *VIC) GetCell(mem interface{ Read(uint16) uint8 }, x, y int) Cell {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return Cell{ScreenCode: 0x20, Color: 0x0E}
	}
	offset := y*ScreenWidth + x
	return Cell{
		ScreenCode: mem.Read(v.screenBase + uint16(offset)),
		Color:      v.colorRAM[offset],
	}
}

// Glyph translates a C64 screen code into the display rune a terminal
// or bitmap font would show for it, including the inverse-video
// recursion (codes 128-255 render their low-7-bit base glyph).
func Glyph(code uint8) rune {
	if code == 160 {
		return '█' // shift+space / reverse space (cursor)
	}
	if code >= 128 {
		return Glyph(code & 0x7F)
	}
	switch {
	case code == 0:
		return '@'
	case code >= 1 && code <= 26:
		return rune('A' + (code - 1))
	case code == 27:
		return '['
	case code == 28:
		return '£'
	case code == 29:
		return ']'
	case code == 30:
		return '↑'
	case code == 31:
		return '←'
	case code == 32:
		return ' '
	case code == 33:
		return '!'
	case code == 34:
		return '"'
	case code == 35:
		return '#'
	case code == 36:
		return '$'
	case code == 37:
		return '%'
	case code == 38:
		return '&'
	case code == 39:
		return '\''
	case code == 40:
		return '('
	case code == 41:
		return ')'
	case code == 42:
		return '*'
	case code == 43:
		return '+'
	case code == 44:
		return ','
	case code == 45:
		return '-'
	case code == 46:
		return '.'
	case code == 47:
		return '/'
	case code >= 48 && code <= 57:
		return rune('0' + (code - 48))
	case code == 58:
		return ':'
	case code == 59:
		return ';'
	case code == 60:
		return '<'
	case code == 61:
		return '='
	case code == 62:
		return '>'
	case code == 63:
		return '?'
	case code == 65:
		return '♠'
	case code == 66, code == 71, code == 72, code == 92, code == 93:
		return '│'
	case code == 67, code == 68, code == 69, code == 70, code == 84, code == 89:
		return '─'
	case code == 73:
		return '╯'
	case code == 74:
		return '╮'
	case code == 75:
		return '╰'
	case code == 76, code == 85:
		return '╭'
	case code == 77:
		return '╲'
	case code == 78:
		return '╱'
	case code == 79, code == 86:
		return '╳'
	case code == 80, code == 81:
		return '●'
	case code == 82, code == 87:
		return '○'
	case code == 83:
		return '♥'
	case code == 88:
		return '♣'
	case code == 90:
		return '♦'
	case code == 91:
		return '+'
	case code == 94:
		return 'π'
	case code == 95:
		return '◥'
	default:
		return '▒'
	}
}
