package cpu

// Mode identifies one of the 6502's addressing modes. Implied and
// Accumulator never resolve an operand address, so they are handled
// directly inside exec functions rather than through resolveOperand.
type Mode uint8

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// samePage reports whether a and b fall in the same 256-byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// resolveOperand returns the effective address for mode, along with
// whether resolving it crossed a page boundary (relevant only to the
// indexed modes that charge an extra cycle for that). It assumes PC
// points at the first operand byte of the current instruction.
func (c *Cpu) resolveOperand(mode Mode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Immediate:
		return c.PC, false
	case ZeroPage:
		return uint16(c.read(c.PC)), false
	case ZeroPageX:
		return uint16(c.read(c.PC) + c.X), false
	case ZeroPageY:
		return uint16(c.read(c.PC) + c.Y), false
	case Absolute:
		return c.read16(c.PC), false
	case AbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		return addr, !samePage(base, addr)
	case AbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, !samePage(base, addr)
	case Indirect:
		// Hardware bug: if the pointer's low byte is $FF, the high
		// byte is fetched from the start of the SAME page rather
		// than the next one.
		ptr := c.read16(c.PC)
		return c.read16Wrapped(ptr), false
	case IndirectX:
		ptr := uint16(c.read(c.PC) + c.X)
		return c.read16Wrapped(ptr), false
	case IndirectY:
		ptr := uint16(c.read(c.PC))
		base := c.read16Wrapped(ptr)
		addr = base + uint16(c.Y)
		return addr, !samePage(base, addr)
	case Relative:
		// Relative to the PC as it will be once the full two-byte
		// branch instruction has been consumed.
		return (c.PC + 1) + uint16(int8(c.read(c.PC))), false
	default:
		panic("cpu: addressing mode has no operand address")
	}
}

// read16Wrapped reproduces the 6502's page-wrap bug for indirect
// fetches: if ptr's low byte is $FF, the high byte comes from ptr&0xFF00
// instead of ptr+1.
func (c *Cpu) read16Wrapped(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}
