// Package debug renders the register/memory snapshot shown to the
// user when the core halts on a DecodeError.
package debug

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/gruberc/c64emu/cpu"
)

// Snapshot is everything worth dumping about a dead machine: the
// decode failure itself plus the register file at the moment it hit.
type Snapshot struct {
	Err  *cpu.DecodeError
	A, X, Y, P uint8
	SP         uint8
	PC         uint16
}

// Dump renders s in the verbose, field-per-line form spew produces,
// prefixed by the human-readable decode error.
func Dump(s Snapshot) string {
	return fmt.Sprintf("%s\nregisters:\n%s", s.Err, spew.Sdump(s))
}
