package machine

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gruberc/c64emu/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeROM(t *testing.T, dir, name string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644))
}

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	romDir := t.TempDir()
	writeROM(t, romDir, "basic.rom", rom.BasicSize)
	writeROM(t, romDir, "kernal.rom", rom.KernalSize)
	writeROM(t, romDir, "char.rom", rom.CharSize)

	m, err := New(romDir, t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return m
}

func TestNewFailsOnMissingROMDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestStepAdvancesCPUAndTicksChips(t *testing.T) {
	m := newTestMachine(t)
	// The all-zero test ROMs leave the reset vector at $0000, so run a
	// NOP sled in RAM instead.
	for a := uint16(0x1000); a < 0x1100; a++ {
		m.Memory.Write(a, 0xEA) // NOP
	}
	m.CPU.PC = 0x1000
	for i := 0; i < 100; i++ {
		require.NoError(t, m.Step())
	}
}

func TestStepPropagatesDecodeError(t *testing.T) {
	m := newTestMachine(t)
	m.CPU.PC = 0x0000
	m.Memory.Write(0x0000, 0x02) // undocumented opcode

	var sawErr bool
	for i := 0; i < 4 && !sawErr; i++ {
		if err := m.Step(); err != nil {
			sawErr = true
		}
	}
	assert.True(t, sawErr)
}

func TestRestoreFiresNmiOnceOnRisingEdge(t *testing.T) {
	m := newTestMachine(t)
	before := m.CPU.PC

	m.Restore(true)
	assert.NotEqual(t, before, m.CPU.PC, "NMI should have redirected PC to the NMI vector")
}

func TestSnapshotReturnsFullGrid(t *testing.T) {
	m := newTestMachine(t)
	f := m.Snapshot()
	assert.Len(t, f.Cells, 25)
	assert.Len(t, f.Cells[0], 40)
}

func TestPressAndReleaseKeyReachesCIA1(t *testing.T) {
	m := newTestMachine(t)
	m.PressKey(1, 4)
	m.Memory.CIA1.PRA = 0xFF &^ (1 << 1) // select row 1
	assert.Equal(t, uint8(0xFF&^(1<<4)), m.Memory.CIA1.Read(0x01))

	m.ReleaseKey(1, 4)
	m.DecayKeyboard()
	assert.Equal(t, uint8(0xFF), m.Memory.CIA1.Read(0x01))
}
