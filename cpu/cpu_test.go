package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatMemory is a bare 64KiB array satisfying the Memory interface,
// used to exercise the CPU in isolation from any banking scheme.
type flatMemory struct {
	ram [0x10000]uint8
}

func (m *flatMemory) Read(addr uint16) uint8     { return m.ram[addr] }
func (m *flatMemory) Write(addr uint16, v uint8) { m.ram[addr] = v }

func newTestCPU(resetPC uint16) (*Cpu, *flatMemory) {
	mem := &flatMemory{}
	mem.ram[VectorReset] = uint8(resetPC)
	mem.ram[VectorReset+1] = uint8(resetPC >> 8)
	return New(mem, nil), mem
}

func load(mem *flatMemory, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.ram[int(addr)+i] = b
	}
}

func runN(t *testing.T, c *Cpu, instructions int) {
	t.Helper()
	for i := 0; i < instructions; i++ {
		require.NoError(t, c.Step())
		for c.pending > 0 {
			require.NoError(t, c.Step())
		}
	}
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.flagSet(FlagInterruptDisable))
	assert.True(t, c.flagSet(FlagUnused))
}

func TestLdaImmediateSetsZeroAndNegative(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	load(mem, 0x8000, 0xA9, 0x00) // LDA #$00
	runN(t, c, 1)
	assert.Equal(t, uint8(0), c.A)
	assert.True(t, c.flagSet(FlagZero))
	assert.False(t, c.flagSet(FlagNegative))

	c, mem = newTestCPU(0x8000)
	load(mem, 0x8000, 0xA9, 0x80) // LDA #$80
	runN(t, c, 1)
	assert.Equal(t, uint8(0x80), c.A)
	assert.False(t, c.flagSet(FlagZero))
	assert.True(t, c.flagSet(FlagNegative))
}

func TestAdcCarryAndOverflow(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	load(mem, 0x8000,
		0xA9, 0x7F, // LDA #$7F
		0x69, 0x01, // ADC #$01
	)
	runN(t, c, 2)
	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.flagSet(FlagOverflow), "signed 127+1 should overflow")
	assert.True(t, c.flagSet(FlagNegative))
	assert.False(t, c.flagSet(FlagCarry))
}

func TestSbcBorrow(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	load(mem, 0x8000,
		0x38,       // SEC (no borrow going in)
		0xA9, 0x05, // LDA #$05
		0xE9, 0x06, // SBC #$06
	)
	runN(t, c, 3)
	assert.Equal(t, uint8(0xFF), c.A)
	assert.False(t, c.flagSet(FlagCarry), "carry clear indicates a borrow occurred")
}

func TestAbsoluteXPageCrossExtraCycle(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	load(mem, 0x8000, 0xA2, 0xFF) // LDX #$FF
	load(mem, 0x8002, 0xBD, 0x01, 0x00) // LDA $0001,X -> $0100, page cross
	mem.ram[0x0100] = 0x42

	require.NoError(t, c.Step()) // fetch LDX
	for c.pending > 0 {
		require.NoError(t, c.Step())
	}

	require.NoError(t, c.Step()) // fetch LDA
	assert.Equal(t, uint8(4+1-1), c.pending, "base 4 cycles + 1 page-cross penalty, minus the fetch cycle")
}

func TestBranchTakenAndPageCross(t *testing.T) {
	c, mem := newTestCPU(0x80F0)
	load(mem, 0x80F0, 0x18) // CLC
	load(mem, 0x80F1, 0x90, 0x20) // BCC +$20 -> crosses into next page
	runN(t, c, 1)

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8113), c.PC)
	assert.Equal(t, uint8(2+1+1-1), c.pending)
}

func TestJsrRtsRoundTrip(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	load(mem, 0x8000, 0x20, 0x00, 0x90) // JSR $9000
	load(mem, 0x9000, 0x60)             // RTS
	runN(t, c, 1)
	assert.Equal(t, uint16(0x9000), c.PC)
	runN(t, c, 1)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestBrkPushesStatusWithBreakAndUnusedSet(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.ram[VectorBRK] = 0x00
	mem.ram[VectorBRK+1] = 0x90
	load(mem, 0x8000, 0x00, 0x00) // BRK
	runN(t, c, 1)

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.flagSet(FlagInterruptDisable))

	pushed := c.read(stackPage + uint16(c.SP) + 1)
	assert.NotZero(t, pushed&FlagBreak)
	assert.NotZero(t, pushed&FlagUnused)
}

func TestUndefinedOpcodeReturnsDecodeErrorWithoutMutatingState(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	load(mem, 0x8000, 0x02) // not a documented opcode
	before := *c

	err := c.Step()
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, uint16(0x8000), decodeErr.PC)
	assert.Equal(t, uint8(0x02), decodeErr.Opcode)
	assert.Equal(t, before.PC, c.PC)
	assert.Equal(t, before.A, c.A)
}

func TestIrqIgnoredWhenInterruptsDisabled(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	assert.True(t, c.flagSet(FlagInterruptDisable))
	pcBefore := c.PC
	c.Irq()
	assert.Equal(t, pcBefore, c.PC, "IRQ must be masked while I is set")
}

func TestNmiAlwaysServiced(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.ram[VectorNMI] = 0x00
	mem.ram[VectorNMI+1] = 0x90
	c.Nmi()
	assert.Equal(t, uint16(0x9000), c.PC)
}

// stubTrap synthesizes an RTS at the trapped address, matching
// the shape kernal.Traps uses for LOAD/SAVE interception.
type stubTrap struct {
	at      uint16
	handled bool
}

func (s *stubTrap) Trap(c *Cpu, mem Memory, pc uint16) bool {
	if pc != s.at {
		return false
	}
	s.handled = true
	c.PC = c.popAddr() + 1
	return true
}

func TestTrapInterceptsBeforeDecode(t *testing.T) {
	mem := &flatMemory{}
	mem.ram[VectorReset] = 0x00
	mem.ram[VectorReset+1] = 0x80
	trap := &stubTrap{at: 0xFFD5}
	c := New(mem, trap)

	load(mem, 0x8000, 0x20, 0xD5, 0xFF) // JSR $FFD5
	runN(t, c, 1)                       // JSR leaves PC at $FFD5

	require.NoError(t, c.Step())
	assert.True(t, trap.handled)
	assert.Equal(t, uint16(0x8003), c.PC)
}
