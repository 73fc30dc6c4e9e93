package cpu

// opcode describes one documented 6502 instruction encoding: which
// exec function implements it, how its operand is addressed, how many
// bytes (including the opcode byte itself) it occupies, and its base
// cycle cost before any page-crossing or branch-taken penalty.
type opcode struct {
	name   string
	mode   Mode
	bytes  uint8
	cycles uint8
	// exec runs the instruction and reports whether it redirected PC
	// itself (branch taken, JMP/JSR/RTS/RTI/BRK), so Step never has to
	// infer a redirect by comparing PC against a fall-through guess.
	exec func(c *Cpu, mode Mode) (redirectedPC bool)
}

// opcodeTable holds all 151 documented 6502 opcodes, keyed by their
// encoding byte.
var opcodeTable = map[uint8]opcode{
	0x69: {"ADC", Immediate, 2, 2, (*Cpu).adc},
	0x65: {"ADC", ZeroPage, 2, 3, (*Cpu).adc},
	0x75: {"ADC", ZeroPageX, 2, 4, (*Cpu).adc},
	0x6D: {"ADC", Absolute, 3, 4, (*Cpu).adc},
	0x7D: {"ADC", AbsoluteX, 3, 4, (*Cpu).adc},
	0x79: {"ADC", AbsoluteY, 3, 4, (*Cpu).adc},
	0x61: {"ADC", IndirectX, 2, 6, (*Cpu).adc},
	0x71: {"ADC", IndirectY, 2, 5, (*Cpu).adc},

	0x29: {"AND", Immediate, 2, 2, (*Cpu).and},
	0x25: {"AND", ZeroPage, 2, 3, (*Cpu).and},
	0x35: {"AND", ZeroPageX, 2, 4, (*Cpu).and},
	0x2D: {"AND", Absolute, 3, 4, (*Cpu).and},
	0x3D: {"AND", AbsoluteX, 3, 4, (*Cpu).and},
	0x39: {"AND", AbsoluteY, 3, 4, (*Cpu).and},
	0x21: {"AND", IndirectX, 2, 6, (*Cpu).and},
	0x31: {"AND", IndirectY, 2, 5, (*Cpu).and},

	0x0A: {"ASL", Accumulator, 1, 2, (*Cpu).asl},
	0x06: {"ASL", ZeroPage, 2, 5, (*Cpu).asl},
	0x16: {"ASL", ZeroPageX, 2, 6, (*Cpu).asl},
	0x0E: {"ASL", Absolute, 3, 6, (*Cpu).asl},
	0x1E: {"ASL", AbsoluteX, 3, 7, (*Cpu).asl},

	0x90: {"BCC", Relative, 2, 2, (*Cpu).bcc},
	0xB0: {"BCS", Relative, 2, 2, (*Cpu).bcs},
	0xF0: {"BEQ", Relative, 2, 2, (*Cpu).beq},
	0x24: {"BIT", ZeroPage, 2, 3, (*Cpu).bit},
	0x2C: {"BIT", Absolute, 3, 4, (*Cpu).bit},
	0x30: {"BMI", Relative, 2, 2, (*Cpu).bmi},
	0xD0: {"BNE", Relative, 2, 2, (*Cpu).bne},
	0x10: {"BPL", Relative, 2, 2, (*Cpu).bpl},
	0x00: {"BRK", Implied, 1, 7, (*Cpu).brk},
	0x50: {"BVC", Relative, 2, 2, (*Cpu).bvc},
	0x70: {"BVS", Relative, 2, 2, (*Cpu).bvs},

	0x18: {"CLC", Implied, 1, 2, (*Cpu).clc},
	0xD8: {"CLD", Implied, 1, 2, (*Cpu).cld},
	0x58: {"CLI", Implied, 1, 2, (*Cpu).cli},
	0xB8: {"CLV", Implied, 1, 2, (*Cpu).clv},

	0xC9: {"CMP", Immediate, 2, 2, (*Cpu).cmp},
	0xC5: {"CMP", ZeroPage, 2, 3, (*Cpu).cmp},
	0xD5: {"CMP", ZeroPageX, 2, 4, (*Cpu).cmp},
	0xCD: {"CMP", Absolute, 3, 4, (*Cpu).cmp},
	0xDD: {"CMP", AbsoluteX, 3, 4, (*Cpu).cmp},
	0xD9: {"CMP", AbsoluteY, 3, 4, (*Cpu).cmp},
	0xC1: {"CMP", IndirectX, 2, 6, (*Cpu).cmp},
	0xD1: {"CMP", IndirectY, 2, 5, (*Cpu).cmp},

	0xE0: {"CPX", Immediate, 2, 2, (*Cpu).cpx},
	0xE4: {"CPX", ZeroPage, 2, 3, (*Cpu).cpx},
	0xEC: {"CPX", Absolute, 3, 4, (*Cpu).cpx},
	0xC0: {"CPY", Immediate, 2, 2, (*Cpu).cpy},
	0xC4: {"CPY", ZeroPage, 2, 3, (*Cpu).cpy},
	0xCC: {"CPY", Absolute, 3, 4, (*Cpu).cpy},

	0xC6: {"DEC", ZeroPage, 2, 5, (*Cpu).dec},
	0xD6: {"DEC", ZeroPageX, 2, 6, (*Cpu).dec},
	0xCE: {"DEC", Absolute, 3, 6, (*Cpu).dec},
	0xDE: {"DEC", AbsoluteX, 3, 7, (*Cpu).dec},
	0xCA: {"DEX", Implied, 1, 2, (*Cpu).dex},
	0x88: {"DEY", Implied, 1, 2, (*Cpu).dey},

	0x49: {"EOR", Immediate, 2, 2, (*Cpu).eor},
	0x45: {"EOR", ZeroPage, 2, 3, (*Cpu).eor},
	0x55: {"EOR", ZeroPageX, 2, 4, (*Cpu).eor},
	0x4D: {"EOR", Absolute, 3, 4, (*Cpu).eor},
	0x5D: {"EOR", AbsoluteX, 3, 4, (*Cpu).eor},
	0x59: {"EOR", AbsoluteY, 3, 4, (*Cpu).eor},
	0x41: {"EOR", IndirectX, 2, 6, (*Cpu).eor},
	0x51: {"EOR", IndirectY, 2, 5, (*Cpu).eor},

	0xE6: {"INC", ZeroPage, 2, 5, (*Cpu).inc},
	0xF6: {"INC", ZeroPageX, 2, 6, (*Cpu).inc},
	0xEE: {"INC", Absolute, 3, 6, (*Cpu).inc},
	0xFE: {"INC", AbsoluteX, 3, 7, (*Cpu).inc},
	0xE8: {"INX", Implied, 1, 2, (*Cpu).inx},
	0xC8: {"INY", Implied, 1, 2, (*Cpu).iny},

	0x4C: {"JMP", Absolute, 3, 3, (*Cpu).jmp},
	0x6C: {"JMP", Indirect, 3, 5, (*Cpu).jmp},
	0x20: {"JSR", Absolute, 3, 6, (*Cpu).jsr},

	0xA9: {"LDA", Immediate, 2, 2, (*Cpu).lda},
	0xA5: {"LDA", ZeroPage, 2, 3, (*Cpu).lda},
	0xB5: {"LDA", ZeroPageX, 2, 4, (*Cpu).lda},
	0xAD: {"LDA", Absolute, 3, 4, (*Cpu).lda},
	0xBD: {"LDA", AbsoluteX, 3, 4, (*Cpu).lda},
	0xB9: {"LDA", AbsoluteY, 3, 4, (*Cpu).lda},
	0xA1: {"LDA", IndirectX, 2, 6, (*Cpu).lda},
	0xB1: {"LDA", IndirectY, 2, 5, (*Cpu).lda},

	0xA2: {"LDX", Immediate, 2, 2, (*Cpu).ldx},
	0xA6: {"LDX", ZeroPage, 2, 3, (*Cpu).ldx},
	0xB6: {"LDX", ZeroPageY, 2, 4, (*Cpu).ldx},
	0xAE: {"LDX", Absolute, 3, 4, (*Cpu).ldx},
	0xBE: {"LDX", AbsoluteY, 3, 4, (*Cpu).ldx},

	0xA0: {"LDY", Immediate, 2, 2, (*Cpu).ldy},
	0xA4: {"LDY", ZeroPage, 2, 3, (*Cpu).ldy},
	0xB4: {"LDY", ZeroPageX, 2, 4, (*Cpu).ldy},
	0xAC: {"LDY", Absolute, 3, 4, (*Cpu).ldy},
	0xBC: {"LDY", AbsoluteX, 3, 4, (*Cpu).ldy},

	0x4A: {"LSR", Accumulator, 1, 2, (*Cpu).lsr},
	0x46: {"LSR", ZeroPage, 2, 5, (*Cpu).lsr},
	0x56: {"LSR", ZeroPageX, 2, 6, (*Cpu).lsr},
	0x4E: {"LSR", Absolute, 3, 6, (*Cpu).lsr},
	0x5E: {"LSR", AbsoluteX, 3, 7, (*Cpu).lsr},

	0xEA: {"NOP", Implied, 1, 2, (*Cpu).nop},

	0x09: {"ORA", Immediate, 2, 2, (*Cpu).ora},
	0x05: {"ORA", ZeroPage, 2, 3, (*Cpu).ora},
	0x15: {"ORA", ZeroPageX, 2, 4, (*Cpu).ora},
	0x0D: {"ORA", Absolute, 3, 4, (*Cpu).ora},
	0x1D: {"ORA", AbsoluteX, 3, 4, (*Cpu).ora},
	0x19: {"ORA", AbsoluteY, 3, 4, (*Cpu).ora},
	0x01: {"ORA", IndirectX, 2, 6, (*Cpu).ora},
	0x11: {"ORA", IndirectY, 2, 5, (*Cpu).ora},

	0x48: {"PHA", Implied, 1, 3, (*Cpu).pha},
	0x08: {"PHP", Implied, 1, 3, (*Cpu).php},
	0x68: {"PLA", Implied, 1, 4, (*Cpu).pla},
	0x28: {"PLP", Implied, 1, 4, (*Cpu).plp},

	0x2A: {"ROL", Accumulator, 1, 2, (*Cpu).rol},
	0x26: {"ROL", ZeroPage, 2, 5, (*Cpu).rol},
	0x36: {"ROL", ZeroPageX, 2, 6, (*Cpu).rol},
	0x2E: {"ROL", Absolute, 3, 6, (*Cpu).rol},
	0x3E: {"ROL", AbsoluteX, 3, 7, (*Cpu).rol},

	0x6A: {"ROR", Accumulator, 1, 2, (*Cpu).ror},
	0x66: {"ROR", ZeroPage, 2, 5, (*Cpu).ror},
	0x76: {"ROR", ZeroPageX, 2, 6, (*Cpu).ror},
	0x6E: {"ROR", Absolute, 3, 6, (*Cpu).ror},
	0x7E: {"ROR", AbsoluteX, 3, 7, (*Cpu).ror},

	0x40: {"RTI", Implied, 1, 6, (*Cpu).rti},
	0x60: {"RTS", Implied, 1, 6, (*Cpu).rts},

	0xE9: {"SBC", Immediate, 2, 2, (*Cpu).sbc},
	0xE5: {"SBC", ZeroPage, 2, 3, (*Cpu).sbc},
	0xF5: {"SBC", ZeroPageX, 2, 4, (*Cpu).sbc},
	0xED: {"SBC", Absolute, 3, 4, (*Cpu).sbc},
	0xFD: {"SBC", AbsoluteX, 3, 4, (*Cpu).sbc},
	0xF9: {"SBC", AbsoluteY, 3, 4, (*Cpu).sbc},
	0xE1: {"SBC", IndirectX, 2, 6, (*Cpu).sbc},
	0xF1: {"SBC", IndirectY, 2, 5, (*Cpu).sbc},

	0x38: {"SEC", Implied, 1, 2, (*Cpu).sec},
	0xF8: {"SED", Implied, 1, 2, (*Cpu).sed},
	0x78: {"SEI", Implied, 1, 2, (*Cpu).sei},

	0x85: {"STA", ZeroPage, 2, 3, (*Cpu).sta},
	0x95: {"STA", ZeroPageX, 2, 4, (*Cpu).sta},
	0x8D: {"STA", Absolute, 3, 4, (*Cpu).sta},
	0x9D: {"STA", AbsoluteX, 3, 5, (*Cpu).sta},
	0x99: {"STA", AbsoluteY, 3, 5, (*Cpu).sta},
	0x81: {"STA", IndirectX, 2, 6, (*Cpu).sta},
	0x91: {"STA", IndirectY, 2, 6, (*Cpu).sta},

	0x86: {"STX", ZeroPage, 2, 3, (*Cpu).stx},
	0x96: {"STX", ZeroPageY, 2, 4, (*Cpu).stx},
	0x8E: {"STX", Absolute, 3, 4, (*Cpu).stx},

	0x84: {"STY", ZeroPage, 2, 3, (*Cpu).sty},
	0x94: {"STY", ZeroPageX, 2, 4, (*Cpu).sty},
	0x8C: {"STY", Absolute, 3, 4, (*Cpu).sty},

	0xAA: {"TAX", Implied, 1, 2, (*Cpu).tax},
	0xA8: {"TAY", Implied, 1, 2, (*Cpu).tay},
	0xBA: {"TSX", Implied, 1, 2, (*Cpu).tsx},
	0x8A: {"TXA", Implied, 1, 2, (*Cpu).txa},
	0x9A: {"TXS", Implied, 1, 2, (*Cpu).txs},
	0x98: {"TYA", Implied, 1, 2, (*Cpu).tya},
}
