// Package machine wires the CPU, banked memory, both CIA chips, the
// VIC-II, the virtual disk, and the KERNAL HLE traps into the single
// cooperative loop the core runs: one CPU cycle, then one cycle's
// worth of tick on CIA1, CIA2, and VIC-II, in that fixed order.
package machine

import (
	"fmt"
	"log/slog"

	"github.com/gruberc/c64emu/cpu"
	"github.com/gruberc/c64emu/disk"
	"github.com/gruberc/c64emu/kernal"
	"github.com/gruberc/c64emu/memory"
	"github.com/gruberc/c64emu/rom"
	"github.com/gruberc/c64emu/vic"
)

// Frame is a fully rendered snapshot of what the VIC-II would show:
// the 40x25 cell grid (screen code + color nibble) plus border and
// background color.
type Frame struct {
	Cells      [][]CellSnapshot
	Border     uint8
	Background uint8
}

// CellSnapshot is one screen position's worth of text-mode display state.
type CellSnapshot struct {
	ScreenCode uint8
	Color      uint8
}

// Machine owns every core component and drives them together.
type Machine struct {
	CPU    *cpu.Cpu
	Memory *memory.Memory
	Disk   *disk.Disk
	Kernal *kernal.Traps

	log *slog.Logger

	nmiPrev bool // for RESTORE-key edge detection
}

// New constructs a Machine with ROMs loaded from romDir and the
// virtual disk rooted at diskDir. Either directory error is returned
// wrapped, matching the core's IoError surfacing rule.
func New(romDir, diskDir string, log *slog.Logger) (*Machine, error) {
	set, err := rom.LoadSet(romDir)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	d, err := disk.New(diskDir)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	mem := memory.New()
	mem.LoadROMs(set)

	traps := kernal.New(d)
	c := cpu.New(mem, traps)

	log.Info("machine initialized", "romDir", romDir, "diskDir", diskDir)

	return &Machine{
		CPU:    c,
		Memory: mem,
		Disk:   d,
		Kernal: traps,
		log:    log,
	}, nil
}

// Step advances the whole machine by exactly one clock cycle: the CPU
// burns or spends one cycle, then each chip ticks by that same one
// cycle, in CIA1/CIA2/VIC-II order. It returns a *cpu.DecodeError if
// the CPU hit an undocumented opcode; the caller decides whether that
// is fatal.
func (m *Machine) Step() error {
	if err := m.CPU.Step(); err != nil {
		m.log.Error("cpu halted on decode error", "err", err, "pc", m.CPU.PC)
		return err
	}

	m.Memory.CIA1.Tick(1)
	m.Memory.CIA2.Tick(1)
	m.Memory.VIC.Tick(1)

	// A chip's IRQ line is level-sensitive: once a source latches into
	// its ICR, it stays asserted until software acknowledges it, not
	// just on the single cycle Tick happened to fire on. Querying that
	// live state here, right after this step, means a source that
	// latched on any of an instruction's cycles is still seen the
	// moment the CPU actually reaches its next instruction boundary,
	// rather than only on the one cycle it first fired.
	if m.CPU.AtInstructionBoundary() && (m.Memory.CIA1.PendingIRQ() || m.Memory.CIA2.PendingIRQ() || m.Memory.VIC.PendingIRQ()) {
		m.CPU.Irq()
	}

	return nil
}

// Restore edge-triggers an NMI the way the RESTORE key does: pressed
// is the current host key state, and Nmi fires exactly once per
// false-to-true transition. A transition seen while the CPU is
// mid-instruction stays pending and fires on the first later call that
// finds the CPU at an instruction boundary with pressed still true.
func (m *Machine) Restore(pressed bool) {
	if pressed && !m.nmiPrev {
		if !m.CPU.AtInstructionBoundary() {
			return
		}
		m.log.Debug("nmi asserted", "source", "restore key")
		m.CPU.Nmi()
	}
	m.nmiPrev = pressed
}

// DecayKeyboard ages the keyboard matrix's decay counters by one
// frame; call this once per rendered frame, after polling host input.
func (m *Machine) DecayKeyboard() {
	m.Memory.CIA1.Decay()
}

// PressKey and ReleaseKey set or clear a keyboard matrix cell.
func (m *Machine) PressKey(row, col uint8)   { m.Memory.CIA1.SetKey(row, col, true) }
func (m *Machine) ReleaseKey(row, col uint8) { m.Memory.CIA1.SetKey(row, col, false) }

// Snapshot reads the VIC-II's 40x25 text-mode screen into a Frame the
// renderer can draw without touching any core state itself.
func (m *Machine) Snapshot() Frame {
	cells := make([][]CellSnapshot, vic.ScreenHeight)
	for y := 0; y < vic.ScreenHeight; y++ {
		row := make([]CellSnapshot, vic.ScreenWidth)
		for x := 0; x < vic.ScreenWidth; x++ {
			cell := m.Memory.VIC.GetCell(m.Memory, x, y)
			row[x] = CellSnapshot{ScreenCode: cell.ScreenCode, Color: cell.Color}
		}
		cells[y] = row
	}

	return Frame{
		Cells:      cells,
		Border:     m.Memory.VIC.BorderColor(),
		Background: m.Memory.VIC.BackgroundColor(),
	}
}
