package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gruberc/c64emu/cpu"
	"github.com/gruberc/c64emu/internal/debug"
	"github.com/gruberc/c64emu/internal/logging"
	"github.com/gruberc/c64emu/machine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	var (
		debugMode bool
		noUI      bool
		romDir    string
		diskDir   string
	)

	root := &cobra.Command{
		Use:   "c64",
		Short: "Commodore 64 core emulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.NewLogger(os.Stderr, debugMode)

			m, err := machine.New(romDir, diskDir, log)
			if err != nil {
				return err
			}

			if noUI {
				return runHeadless(m, log)
			}

			ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
			ebiten.SetWindowTitle("c64emu")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			return ebiten.RunGame(newGame(m, log))
		},
	}

	home, _ := os.UserHomeDir()
	root.Flags().BoolVar(&debugMode, "debug", false, "echo every log record to stderr")
	root.Flags().BoolVar(&noUI, "no-ui", false, "run without opening a window; drive the core to completion or a decode error")
	root.Flags().StringVar(&romDir, "rom-dir", ".", "directory containing basic.rom, kernal.rom, char.rom")
	root.Flags().StringVar(&diskDir, "disk-dir", home+"/.c64emu/disk8", "host directory backing the virtual 1541")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless drives the core without a window, for scripted use and
// tests of the boot ROM: it steps until the core halts on a decode
// error, which in --no-ui mode is the only stopping condition.
func runHeadless(m *machine.Machine, log *slog.Logger) error {
	for {
		err := m.Step()
		if err == nil {
			continue
		}

		log.Error("core halted", "err", err)

		var de *cpu.DecodeError
		if errors.As(err, &de) {
			fmt.Fprintln(os.Stderr, debug.Dump(debug.Snapshot{
				Err: de,
				A:   m.CPU.A, X: m.CPU.X, Y: m.CPU.Y, P: m.CPU.P,
				SP: m.CPU.SP, PC: m.CPU.PC,
			}))
		}
		return err
	}
}
