// Package rom loads the three fixed-function ROM images a C64 needs
// to boot: BASIC, KERNAL, and the character generator.
package rom

import (
	"fmt"
	"os"
	"path/filepath"
)

// Expected sizes of each ROM image, in bytes.
const (
	BasicSize  = 0x2000
	KernalSize = 0x2000
	CharSize   = 0x1000
)

// Set holds the three loaded ROM images.
type Set struct {
	Basic  []byte
	Kernal []byte
	Char   []byte
}

// LoadSet reads basic.rom, kernal.rom, and char.rom from dir and
// validates each against its expected size.
func LoadSet(dir string) (*Set, error) {
	basic, err := readSized(filepath.Join(dir, "basic.rom"), BasicSize)
	if err != nil {
		return nil, fmt.Errorf("loading BASIC ROM: %w", err)
	}
	kernal, err := readSized(filepath.Join(dir, "kernal.rom"), KernalSize)
	if err != nil {
		return nil, fmt.Errorf("loading KERNAL ROM: %w", err)
	}
	char, err := readSized(filepath.Join(dir, "char.rom"), CharSize)
	if err != nil {
		return nil, fmt.Errorf("loading Character ROM: %w", err)
	}

	return &Set{Basic: basic, Kernal: kernal, Char: char}, nil
}

func readSized(path string, want int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(data) != want {
		return nil, fmt.Errorf("%s: expected %d bytes, got %d", path, want, len(data))
	}
	return data, nil
}
