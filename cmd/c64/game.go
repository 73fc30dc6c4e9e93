package main

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gruberc/c64emu/keymap"
	"github.com/gruberc/c64emu/machine"
	"github.com/gruberc/c64emu/vic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	cellWidth   = 8
	cellHeight  = 8
	borderCells = 2

	screenWidth  = (vic.ScreenWidth + 2*borderCells) * cellWidth
	screenHeight = (vic.ScreenHeight + 2*borderCells) * cellHeight

	cyclesPerFrame = 312 * 63 // one full PAL raster frame: 312 lines x 63 cycles/line
)

// palette is the C64's fixed 16-color set, in the order VIC-II color
// index 0-15 addresses them.
var palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0x88, 0x39, 0x32, 0xFF}, // red
	{0x67, 0xB6, 0xBD, 0xFF}, // cyan
	{0x8B, 0x3F, 0x96, 0xFF}, // purple
	{0x55, 0xA0, 0x49, 0xFF}, // green
	{0x40, 0x31, 0x8D, 0xFF}, // blue
	{0xBF, 0xCE, 0x72, 0xFF}, // yellow
	{0x8B, 0x54, 0x29, 0xFF}, // orange
	{0x57, 0x42, 0x00, 0xFF}, // brown
	{0xB8, 0x69, 0x62, 0xFF}, // light red
	{0x50, 0x50, 0x50, 0xFF}, // dark grey
	{0x78, 0x78, 0x78, 0xFF}, // grey
	{0x94, 0xE0, 0x89, 0xFF}, // light green
	{0x78, 0x69, 0xC4, 0xFF}, // light blue
	{0x9F, 0x9F, 0x9F, 0xFF}, // light grey
}

// game adapts a *machine.Machine to the ebiten.Game interface: it runs
// the emulated machine forward by one frame's worth of cycles per
// Update, polls host keys into the keyboard matrix, and renders the
// VIC-II's text-mode framebuffer in Draw.
type game struct {
	m      *machine.Machine
	log    *slog.Logger
	face   *basicfont.Face
	dead   error // set once a DecodeError halts the core
}

func newGame(m *machine.Machine, log *slog.Logger) *game {
	return &game{m: m, log: log, face: basicfont.Face7x13}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *game) Update() error {
	if g.dead != nil {
		return nil
	}

	g.pollKeyboard()
	g.m.Restore(ebiten.IsKeyPressed(ebiten.KeyEnd)) // RESTORE has no modern analogue; End stands in

	for i := 0; i < cyclesPerFrame; i++ {
		if err := g.m.Step(); err != nil {
			g.dead = err
			g.log.Error("core halted on decode error", "err", err)
			break
		}
	}
	g.m.DecayKeyboard()

	return nil
}

func (g *game) pollKeyboard() {
	for _, k := range allKeys {
		pressed := ebiten.IsKeyPressed(k)
		for _, pos := range keymap.MapKey(k) {
			g.setKey(pos, pressed)
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		for _, pos := range keymap.MapChar(r) {
			g.setKey(pos, true)
		}
	}
}

func (g *game) setKey(pos keymap.Position, pressed bool) {
	if pressed {
		g.m.PressKey(pos.Row, pos.Col)
	} else {
		g.m.ReleaseKey(pos.Row, pos.Col)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.m.Snapshot()

	screen.Fill(paletteColor(f.Border))
	inner := image.Rect(
		borderCells*cellWidth, borderCells*cellHeight,
		screenWidth-borderCells*cellWidth, screenHeight-borderCells*cellHeight,
	)
	screen.SubImage(inner).(*ebiten.Image).Fill(paletteColor(f.Background))

	for y, row := range f.Cells {
		for x, cell := range row {
			px := (x + borderCells) * cellWidth
			py := (y + borderCells) * cellHeight
			text.Draw(screen, string(vic.Glyph(cell.ScreenCode)), g.face, px, py+cellHeight-2, paletteColor(cell.Color))
		}
	}
}

func paletteColor(nibble uint8) color.RGBA {
	return palette[nibble&0x0F]
}

// allKeys is the set of ebiten keys keymap knows a non-character
// mapping for, polled once per frame.
var allKeys = []ebiten.Key{
	ebiten.KeyBackspace, ebiten.KeyEnter, ebiten.KeyArrowRight, ebiten.KeyArrowDown,
	ebiten.KeyArrowUp, ebiten.KeyArrowLeft, ebiten.KeyF1, ebiten.KeyF3, ebiten.KeyF5, ebiten.KeyF7,
	ebiten.KeyHome, ebiten.KeyTab,
}
