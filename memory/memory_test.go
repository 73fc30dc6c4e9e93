package memory

import (
	"testing"

	"github.com/gruberc/c64emu/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testROMSet() *rom.Set {
	basic := make([]byte, rom.BasicSize)
	basic[0] = 0xAA
	kernal := make([]byte, rom.KernalSize)
	kernal[0] = 0xBB
	char := make([]byte, rom.CharSize)
	char[0] = 0xCC
	return &rom.Set{Basic: basic, Kernal: kernal, Char: char}
}

func TestResetVectorSeeded(t *testing.T) {
	m := New()
	assert.Equal(t, uint8(0xE2), m.Read(0xFFFC))
	assert.Equal(t, uint8(0xFC), m.Read(0xFFFD))
}

func TestBasicROMVisibleByDefault(t *testing.T) {
	m := New()
	m.LoadROMs(testROMSet())
	assert.Equal(t, uint8(0xAA), m.Read(0xA000))
}

func TestBankingHidesBasicROMWhenBitsCleared(t *testing.T) {
	m := New()
	m.LoadROMs(testROMSet())
	m.Write(0x0001, 0x36) // clear bit 0 -> BASIC no longer visible

	assert.NotEqual(t, uint8(0xAA), m.Read(0xA000))
}

func TestROMWriteFallsThroughToRAM(t *testing.T) {
	m := New()
	m.LoadROMs(testROMSet())
	require.Equal(t, uint8(0xAA), m.Read(0xA000))

	m.Write(0xA000, 0x42) // write while BASIC ROM is visible
	m.Write(0x0001, 0x36) // hide BASIC ROM
	assert.Equal(t, uint8(0x42), m.Read(0xA000), "the write must have landed in the RAM cell underneath")
}

func TestCharROMVisibleWhenIOHidden(t *testing.T) {
	m := New()
	m.LoadROMs(testROMSet())
	m.Write(0x0001, 0x31) // bits 0-2 = 001: char ROM visible, I/O hidden

	assert.Equal(t, uint8(0xCC), m.Read(0xD000))
}

func TestIODispatchesToVICAndCIA(t *testing.T) {
	m := New()
	m.Write(0xD020, 0x01) // VIC border color register
	assert.Equal(t, uint8(0x01), m.VIC.BorderColor())

	m.Write(0xDC00, 0x7F) // CIA1 PRA
	assert.Equal(t, uint8(0x7F), m.CIA1.PRA)
}

func TestColorRAMAccessibleThroughMemoryEvenThoughVICOwnsIt(t *testing.T) {
	m := New()
	m.Write(0xD800, 0x05)
	assert.Equal(t, uint8(0x05), m.Read(0xD800))
}
