package disk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte("TEST"), "TEST.prg"},
		{[]byte("GAME.PRG"), "GAME.PRG"},
		{[]byte("TEST/FILE"), "TEST_FILE.prg"},
		{[]byte("TEST:FILE"), "TEST_FILE.prg"},
		{[]byte("  TEST  "), "TEST.prg"},
		{[]byte(""), "UNNAMED.prg"},
		{[]byte{0, 1, 65, 66}, "__AB.prg"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeFilename(c.in))
	}
}

func TestSaveThenLoadPrgRoundTrip(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	payload := []byte{0x10, 0x20, 0x30}
	require.NoError(t, d.SavePrg([]byte("HELLO"), 0x0801, payload))

	addr, data, err := d.LoadPrg([]byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0801), addr)
	assert.Equal(t, payload, data)
}

func TestLoadPrgMissingFileFails(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, err = d.LoadPrg([]byte("NOSUCHFILE"))
	assert.Error(t, err)
}

func TestListDirectoryIncludesBlockCountAndPaddedName(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	payload := make([]byte, 300) // ceil(300/254) = 2 blocks
	require.NoError(t, d.SavePrg([]byte("HELLO"), 0x0801, payload))

	addr, data, err := d.ListDirectory()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0801), addr)

	require.True(t, len(data) >= 4)
	assert.Equal(t, uint8(0), data[len(data)-2])
	assert.Equal(t, uint8(0), data[len(data)-1])

	s := string(data)
	assert.Contains(t, s, `"HELLO"`)
	assert.Contains(t, s, "PRG")
	assert.Contains(t, s, "BLOCKS FREE.")
}

func TestListDirectoryEmptyDiskStillHasHeaderAndFooter(t *testing.T) {
	d, err := New(t.TempDir())
	require.NoError(t, err)

	_, data, err := d.ListDirectory()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "FLOPPY DISK")
	assert.Contains(t, s, "BLOCKS FREE.")
}
