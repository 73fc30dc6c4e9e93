// Package kernal implements high-level emulation (HLE) of the C64
// KERNAL's LOAD and SAVE routines: rather than executing the real
// KERNAL ROM's serial-bus bit-banging, it intercepts the two
// well-known entry points and performs the equivalent host-file I/O
// directly, then synthesizes the RTS the caller would have executed.
package kernal

import (
	"github.com/gruberc/c64emu/cpu"
	"github.com/gruberc/c64emu/disk"
)

// ROM entry points this package intercepts.
const (
	addrLoad uint16 = 0xFFD5
	addrSave uint16 = 0xFFD8
)

// Zero-page locations the KERNAL uses to pass LOAD/SAVE parameters.
const (
	zpFnameLen  uint16 = 0x00B7
	zpSecondary uint16 = 0x00B9
	zpDevice    uint16 = 0x00BA
	zpFnamePtr  uint16 = 0x00BB // low byte; high byte at zpFnamePtr+1
	zpTxttab    uint16 = 0x002D // start of BASIC text
	zpVartab    uint16 = 0x002F // start of BASIC variables
	zpArytab    uint16 = 0x0031 // start of BASIC arrays
	zpFretop    uint16 = 0x00AE // LOAD's own end-of-program pointer (also mirrors $C9/$CA on real hardware)
)

// KERNAL-visible error codes, placed in A with carry set.
const (
	errFileNotFound     uint8 = 4
	errDeviceNotPresent uint8 = 5
	errIoError          uint8 = 26
)

// Traps wires LOAD and SAVE to a single virtual disk, standing in for
// device 8. Device 1 (tape) always reports DEVICE NOT PRESENT; every
// other device number is served by the same virtual disk.
type Traps struct {
	Disk *disk.Disk
}

// New returns a Traps backed by d.
func New(d *disk.Disk) *Traps {
	return &Traps{Disk: d}
}

// Trap implements cpu.Traps.
func (t *Traps) Trap(c *cpu.Cpu, mem cpu.Memory, pc uint16) bool {
	switch pc {
	case addrLoad:
		t.load(c, mem)
		returnFromTrap(c, mem)
		return true
	case addrSave:
		t.save(c, mem)
		returnFromTrap(c, mem)
		return true
	default:
		return false
	}
}

// returnFromTrap emulates the RTS the KERNAL routine would have
// executed: pop the caller's return address and resume one byte past
// it, matching RTS's own +1 adjustment.
func returnFromTrap(c *cpu.Cpu, mem cpu.Memory) {
	lo := uint16(popStack(c, mem))
	hi := uint16(popStack(c, mem))
	c.PC = (hi<<8 | lo) + 1
}

func popStack(c *cpu.Cpu, mem cpu.Memory) uint8 {
	c.SP++
	return mem.Read(0x0100 + uint16(c.SP))
}

func (t *Traps) load(c *cpu.Cpu, mem cpu.Memory) {
	device := mem.Read(zpDevice)
	if device == 1 {
		c.P |= cpu.FlagCarry
		c.A = errDeviceNotPresent
		return
	}

	name := readFilename(c, mem)

	if string(name) == "$" {
		addr, data, err := t.Disk.ListDirectory()
		if err != nil {
			c.P |= cpu.FlagCarry
			c.A = errIoError
			return
		}
		copyTo(mem, addr, data)
		c.P &^= cpu.FlagCarry
		end := addr + uint16(len(data))
		c.X, c.Y = uint8(end), uint8(end>>8)
		return
	}

	startAddr, data, err := t.Disk.LoadPrg(name)
	if err != nil {
		c.P |= cpu.FlagCarry
		c.A = errFileNotFound
		return
	}

	secondary := mem.Read(zpSecondary)
	dest := startAddr
	if secondary == 0 {
		dest = uint16(c.X) | uint16(c.Y)<<8
	}

	copyTo(mem, dest, data)

	end := dest + uint16(len(data))
	setWord(mem, zpFretop, end)
	setWord(mem, zpTxttab, end)
	setWord(mem, zpVartab, end)
	setWord(mem, zpArytab, end)

	c.P &^= cpu.FlagCarry
	c.X, c.Y = uint8(end), uint8(end>>8)
}

func (t *Traps) save(c *cpu.Cpu, mem cpu.Memory) {
	device := mem.Read(zpDevice)
	if device == 1 {
		c.P |= cpu.FlagCarry
		c.A = errDeviceNotPresent
		return
	}

	name := readFilename(c, mem)

	// A indirectly points, via a zero page pointer, at the start
	// address of the block to save; X/Y hold the exclusive end.
	ptr := uint16(c.A)
	start := uint16(mem.Read(ptr)) | uint16(mem.Read(ptr+1))<<8
	end := uint16(c.X) | uint16(c.Y)<<8

	data := make([]byte, 0, int(end)-int(start))
	for a := start; a < end; a++ {
		data = append(data, mem.Read(a))
	}

	if err := t.Disk.SavePrg(name, start, data); err != nil {
		c.P |= cpu.FlagCarry
		c.A = errIoError
		return
	}
	c.P &^= cpu.FlagCarry
}

func readFilename(c *cpu.Cpu, mem cpu.Memory) []byte {
	length := mem.Read(zpFnameLen)
	ptr := uint16(mem.Read(zpFnamePtr)) | uint16(mem.Read(zpFnamePtr+1))<<8

	name := make([]byte, length)
	for i := range name {
		name[i] = mem.Read(ptr + uint16(i))
	}
	return name
}

func copyTo(mem cpu.Memory, addr uint16, data []byte) {
	for i, b := range data {
		mem.Write(addr+uint16(i), b)
	}
}

func setWord(mem cpu.Memory, addr, v uint16) {
	mem.Write(addr, uint8(v))
	mem.Write(addr+1, uint8(v>>8))
}
