package cpu

// addExtraCycle charges the running instruction one more cycle; used
// for the indexed addressing modes' page-crossing penalty and for
// taken branches.
func (c *Cpu) addExtraCycle() { c.pending++ }

func (c *Cpu) operand(mode Mode) uint8 {
	addr, crossed := c.resolveOperand(mode)
	if crossed {
		c.addExtraCycle()
	}
	return c.read(addr)
}

// operandAddr resolves an address without charging a page-crossing
// penalty: stores, read-modify-write instructions, and JMP/JSR always
// cost their listed cycle count regardless of crossing, unlike the
// load/arithmetic instructions operand() serves.
func (c *Cpu) operandAddr(mode Mode) uint16 {
	addr, _ := c.resolveOperand(mode)
	return addr
}

// addWithCarry implements ADC's add-with-carry-and-overflow, and SBC
// by calling it with the operand complemented by the caller.
func (c *Cpu) addWithCarry(b uint8) {
	sum := uint16(c.A) + uint16(b) + uint16(c.P&FlagCarry)
	res := uint8(sum)

	c.clearFlags(FlagCarry | FlagOverflow)
	if sum&0x100 != 0 {
		c.setFlags(FlagCarry)
	}
	if (c.A^res)&(b^res)&0x80 != 0 {
		c.setFlags(FlagOverflow)
	}

	c.A = res
	c.setZN(c.A)
}

func (c *Cpu) compare(reg, val uint8) {
	c.setZN(reg - val)
	if reg >= val {
		c.setFlags(FlagCarry)
	} else {
		c.clearFlags(FlagCarry)
	}
}

// branchIf redirects PC to the relative target when cond holds,
// charging the taken-branch cycle and an additional one if the branch
// lands on a different page than the instruction following it. It
// reports whether the branch was taken, so callers never need to
// infer a redirect by comparing PC against where a fall-through would
// have landed.
func (c *Cpu) branchIf(cond bool) bool {
	if !cond {
		return false
	}
	target, _ := c.resolveOperand(Relative)
	nextPC := c.PC + 1
	if !samePage(target, nextPC) {
		c.addExtraCycle()
	}
	c.addExtraCycle()
	c.PC = target
	return true
}

func (c *Cpu) adc(mode Mode) bool { c.addWithCarry(c.operand(mode)); return false }
func (c *Cpu) sbc(mode Mode) bool { c.addWithCarry(^c.operand(mode)); return false }

func (c *Cpu) and(mode Mode) bool {
	c.A &= c.operand(mode)
	c.setZN(c.A)
	return false
}

func (c *Cpu) eor(mode Mode) bool {
	c.A ^= c.operand(mode)
	c.setZN(c.A)
	return false
}

func (c *Cpu) ora(mode Mode) bool {
	c.A |= c.operand(mode)
	c.setZN(c.A)
	return false
}

func (c *Cpu) asl(mode Mode) bool {
	var old, new uint8
	if mode == Accumulator {
		old = c.A
		c.A <<= 1
		new = c.A
	} else {
		addr := c.operandAddr(mode)
		old = c.read(addr)
		new = old << 1
		c.write(addr, new)
	}
	c.clearFlags(FlagCarry)
	c.setZN(new)
	if old&0x80 != 0 {
		c.setFlags(FlagCarry)
	}
	return false
}

func (c *Cpu) lsr(mode Mode) bool {
	var old, new uint8
	if mode == Accumulator {
		old = c.A
		c.A >>= 1
		new = c.A
	} else {
		addr := c.operandAddr(mode)
		old = c.read(addr)
		new = old >> 1
		c.write(addr, new)
	}
	c.clearFlags(FlagCarry)
	c.setZN(new)
	if old&0x01 != 0 {
		c.setFlags(FlagCarry)
	}
	return false
}

// rol/ror rotate through the carry flag (a 9-bit rotation), not a
// plain 8-bit bits.RotateLeft8 — the bit shifted out becomes the new
// carry, and the new low/high bit comes from the carry-in, not from
// the bit that was just shifted out.
func (c *Cpu) rol(mode Mode) bool {
	var old, new uint8
	carryIn := c.P & FlagCarry
	if mode == Accumulator {
		old = c.A
		c.A = old<<1 | carryIn
		new = c.A
	} else {
		addr := c.operandAddr(mode)
		old = c.read(addr)
		new = old<<1 | carryIn
		c.write(addr, new)
	}
	c.clearFlags(FlagCarry)
	if old&0x80 != 0 {
		c.setFlags(FlagCarry)
	}
	c.setZN(new)
	return false
}

func (c *Cpu) ror(mode Mode) bool {
	var old, new uint8
	carryIn := (c.P & FlagCarry) << 7
	if mode == Accumulator {
		old = c.A
		c.A = old>>1 | carryIn
		new = c.A
	} else {
		addr := c.operandAddr(mode)
		old = c.read(addr)
		new = old>>1 | carryIn
		c.write(addr, new)
	}
	c.clearFlags(FlagCarry)
	if old&0x01 != 0 {
		c.setFlags(FlagCarry)
	}
	c.setZN(new)
	return false
}

func (c *Cpu) bcc(_ Mode) bool { return c.branchIf(!c.flagSet(FlagCarry)) }
func (c *Cpu) bcs(_ Mode) bool { return c.branchIf(c.flagSet(FlagCarry)) }
func (c *Cpu) beq(_ Mode) bool { return c.branchIf(c.flagSet(FlagZero)) }
func (c *Cpu) bne(_ Mode) bool { return c.branchIf(!c.flagSet(FlagZero)) }
func (c *Cpu) bmi(_ Mode) bool { return c.branchIf(c.flagSet(FlagNegative)) }
func (c *Cpu) bpl(_ Mode) bool { return c.branchIf(!c.flagSet(FlagNegative)) }
func (c *Cpu) bvc(_ Mode) bool { return c.branchIf(!c.flagSet(FlagOverflow)) }
func (c *Cpu) bvs(_ Mode) bool { return c.branchIf(c.flagSet(FlagOverflow)) }

func (c *Cpu) bit(mode Mode) bool {
	v := c.operand(mode)
	c.clearFlags(FlagZero | FlagOverflow | FlagNegative)
	if c.A&v == 0 {
		c.setFlags(FlagZero)
	}
	c.P |= v & (FlagOverflow | FlagNegative)
	return false
}

func (c *Cpu) brk(_ Mode) bool {
	c.interrupt(VectorBRK, true)
	return true
}

func (c *Cpu) clc(_ Mode) bool { c.clearFlags(FlagCarry); return false }
func (c *Cpu) cld(_ Mode) bool { c.clearFlags(FlagDecimal); return false }
func (c *Cpu) cli(_ Mode) bool { c.clearFlags(FlagInterruptDisable); return false }
func (c *Cpu) clv(_ Mode) bool { c.clearFlags(FlagOverflow); return false }
func (c *Cpu) sec(_ Mode) bool { c.setFlags(FlagCarry); return false }
func (c *Cpu) sed(_ Mode) bool { c.setFlags(FlagDecimal); return false }
func (c *Cpu) sei(_ Mode) bool { c.setFlags(FlagInterruptDisable); return false }

func (c *Cpu) cmp(mode Mode) bool { c.compare(c.A, c.operand(mode)); return false }
func (c *Cpu) cpx(mode Mode) bool { c.compare(c.X, c.operand(mode)); return false }
func (c *Cpu) cpy(mode Mode) bool { c.compare(c.Y, c.operand(mode)); return false }

func (c *Cpu) dec(mode Mode) bool {
	addr := c.operandAddr(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
	return false
}

func (c *Cpu) inc(mode Mode) bool {
	addr := c.operandAddr(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
	return false
}

func (c *Cpu) dex(_ Mode) bool { c.X--; c.setZN(c.X); return false }
func (c *Cpu) dey(_ Mode) bool { c.Y--; c.setZN(c.Y); return false }
func (c *Cpu) inx(_ Mode) bool { c.X++; c.setZN(c.X); return false }
func (c *Cpu) iny(_ Mode) bool { c.Y++; c.setZN(c.Y); return false }

func (c *Cpu) jmp(mode Mode) bool {
	c.PC = c.operandAddr(mode)
	return true
}

func (c *Cpu) jsr(mode Mode) bool {
	target := c.operandAddr(mode)
	c.pushAddr(c.PC + 1) // points at the last byte of the JSR operand
	c.PC = target
	return true
}

func (c *Cpu) rts(_ Mode) bool {
	c.PC = c.popAddr() + 1
	return true
}

func (c *Cpu) rti(_ Mode) bool {
	c.P = (c.pop() | FlagUnused) &^ FlagBreak
	c.PC = c.popAddr()
	return true
}

func (c *Cpu) lda(mode Mode) bool { c.A = c.operand(mode); c.setZN(c.A); return false }
func (c *Cpu) ldx(mode Mode) bool { c.X = c.operand(mode); c.setZN(c.X); return false }
func (c *Cpu) ldy(mode Mode) bool { c.Y = c.operand(mode); c.setZN(c.Y); return false }

func (c *Cpu) sta(mode Mode) bool { c.write(c.operandAddr(mode), c.A); return false }
func (c *Cpu) stx(mode Mode) bool { c.write(c.operandAddr(mode), c.X); return false }
func (c *Cpu) sty(mode Mode) bool { c.write(c.operandAddr(mode), c.Y); return false }

func (c *Cpu) pha(_ Mode) bool { c.push(c.A); return false }
func (c *Cpu) pla(_ Mode) bool { c.A = c.pop(); c.setZN(c.A); return false }
func (c *Cpu) php(_ Mode) bool { c.push(c.P | FlagBreak | FlagUnused); return false }
func (c *Cpu) plp(_ Mode) bool { c.P = (c.pop() | FlagUnused) &^ FlagBreak; return false }

func (c *Cpu) tax(_ Mode) bool { c.X = c.A; c.setZN(c.X); return false }
func (c *Cpu) tay(_ Mode) bool { c.Y = c.A; c.setZN(c.Y); return false }
func (c *Cpu) tsx(_ Mode) bool { c.X = c.SP; c.setZN(c.X); return false }
func (c *Cpu) txa(_ Mode) bool { c.A = c.X; c.setZN(c.A); return false }
func (c *Cpu) txs(_ Mode) bool { c.SP = c.X; return false }
func (c *Cpu) tya(_ Mode) bool { c.A = c.Y; c.setZN(c.A); return false }

func (c *Cpu) nop(_ Mode) bool { return false }
