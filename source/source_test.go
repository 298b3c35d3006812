package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/airx/errs"
)

func writeTestFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.airx")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestReadAll(t *testing.T) {
	content := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0x02, 0x03}
	path := writeTestFile(t, content)

	data, err := ReadAll(path)
	require.NoError(t, err)
	require.Equal(t, content, data)
}

func TestReadRange(t *testing.T) {
	content := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	path := writeTestFile(t, content)

	data, err := ReadRange(path, 2, 6)
	require.NoError(t, err)
	require.Equal(t, content[2:6], data)

	// Explicit end returns exactly end-start bytes.
	require.Len(t, data, 4)
}

func TestReadRangeToEnd(t *testing.T) {
	content := []byte{0x00, 0x11, 0x22, 0x33, 0x44}
	path := writeTestFile(t, content)

	data, err := ReadRange(path, 3, EndOfSource)
	require.NoError(t, err)
	require.Equal(t, content[3:], data)
}

func TestReadRangeEmptyFile(t *testing.T) {
	path := writeTestFile(t, nil)

	data, err := ReadAll(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestReadRangeNotFound(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "missing.airx"))
	require.ErrorIs(t, err, errs.ErrSourceNotFound)
}

func TestReadRangeShortRead(t *testing.T) {
	path := writeTestFile(t, []byte{0x01, 0x02, 0x03})

	_, err := ReadRange(path, 0, 10)
	require.ErrorIs(t, err, errs.ErrRead)
}

func TestReadRangeInvalidOffsets(t *testing.T) {
	path := writeTestFile(t, []byte{0x01, 0x02, 0x03})

	_, err := ReadRange(path, -1, 2)
	require.ErrorIs(t, err, errs.ErrRead)

	_, err = ReadRange(path, 2, 1)
	require.ErrorIs(t, err, errs.ErrRead)
}
