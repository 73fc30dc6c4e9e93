// Package memory implements the C64's bankable 64KiB address space:
// the processor port at $0000/$0001 controls whether BASIC, KERNAL,
// and the character generator ROMs or plain RAM are visible at their
// respective address ranges, and the $D000-$DFFF I/O window dispatches
// to the VIC-II, the two CIAs, color RAM, and a SID stub.
package memory

import (
	"github.com/gruberc/c64emu/cia"
	"github.com/gruberc/c64emu/rom"
	"github.com/gruberc/c64emu/vic"
)

// Address ranges the banking logic cares about.
const (
	portAddr     = 0x0001
	basicStart   = 0xA000
	basicEnd     = 0xBFFF
	ioStart      = 0xD000
	ioEnd        = 0xDFFF
	vicEnd       = 0xD3FF
	sidEnd       = 0xD7FF
	colorEnd     = 0xDBFF
	cia1End      = 0xDCFF
	cia2End      = 0xDDFF
	kernalStart  = 0xE000
)

// Memory is the full C64 address space, including the chips whose
// registers live in the I/O bank. It satisfies cpu.Memory.
type Memory struct {
	ram [0x10000]byte

	basic  []byte
	kernal []byte
	char   []byte

	port0000 uint8
	port0001 uint8

	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA
}

// New returns a Memory with both CIAs and the VIC-II wired in, the
// processor port at its default "everything mapped in" state, and the
// reset vector seeded to KERNAL's cold-start entry point so a CPU can
// run even before ROMs are loaded.
func New() *Memory {
	m := &Memory{
		port0000: 0xFF,
		port0001: 0x37, // BASIC+KERNAL+I/O all visible
		VIC:      vic.New(),
		CIA1:     cia.New(),
		CIA2:     cia.New(),
	}
	m.ram[0xFFFC] = 0xE2
	m.ram[0xFFFD] = 0xFC
	return m
}

// LoadROMs installs a loaded ROM set for banking to switch in.
func (m *Memory) LoadROMs(set *rom.Set) {
	m.basic = set.Basic
	m.kernal = set.Kernal
	m.char = set.Char
}

func (m *Memory) basicVisible() bool  { return m.port0001&0x03 == 0x03 }
func (m *Memory) kernalVisible() bool { return m.port0001&0x02 != 0 }
func (m *Memory) ioVisible() bool     { return m.port0001&0x07 >= 0x05 }
func (m *Memory) charROMVisible() bool {
	bits := m.port0001 & 0x07
	return bits == 0x01 || bits == 0x03
}

// Read implements cpu.Memory.
func (m *Memory) Read(addr uint16) uint8 {
	switch {
	case addr == 0x0000:
		return m.port0000
	case addr == portAddr:
		return m.port0001
	case addr >= basicStart && addr <= basicEnd:
		if m.basicVisible() && m.basic != nil {
			return m.basic[addr-basicStart]
		}
		return m.ram[addr]
	case addr >= ioStart && addr <= ioEnd:
		if m.ioVisible() {
			return m.readIO(addr)
		}
		if m.charROMVisible() && m.char != nil {
			return m.char[addr-ioStart]
		}
		return m.ram[addr]
	case addr >= kernalStart:
		if m.kernalVisible() && m.kernal != nil {
			return m.kernal[addr-kernalStart]
		}
		return m.ram[addr]
	default:
		return m.ram[addr]
	}
}

func (m *Memory) readIO(addr uint16) uint8 {
	switch {
	case addr <= vicEnd:
		return m.VIC.ReadRegister(addr)
	case addr <= sidEnd:
		return 0 // SID not modeled
	case addr <= colorEnd:
		return m.VIC.ReadColorRAM(addr - 0xD800)
	case addr <= cia1End:
		return m.CIA1.Read(addr)
	case addr <= cia2End:
		return m.CIA2.Read(addr)
	default:
		return m.ram[addr]
	}
}

// Write implements cpu.Memory. Writes into a ROM-backed range always
// fall through to the underlying RAM cell, which is why LORAM/HIRAM
// switches can reveal RAM that was silently written to all along.
func (m *Memory) Write(addr uint16, val uint8) {
	switch {
	case addr == 0x0000:
		m.port0000 = val
	case addr == portAddr:
		m.port0001 = val
	case addr >= ioStart && addr <= ioEnd:
		if m.ioVisible() {
			m.writeIO(addr, val)
			return
		}
		m.ram[addr] = val
	default:
		m.ram[addr] = val
	}
}

func (m *Memory) writeIO(addr uint16, val uint8) {
	switch {
	case addr <= vicEnd:
		m.VIC.WriteRegister(addr, val)
	case addr <= sidEnd:
		// SID not modeled.
	case addr <= colorEnd:
		m.VIC.WriteColorRAM(addr-0xD800, val)
	case addr <= cia1End:
		m.CIA1.Write(addr, val)
	case addr <= cia2End:
		m.CIA2.Write(addr, val)
	default:
		m.ram[addr] = val
	}
}
