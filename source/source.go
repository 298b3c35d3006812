// Package source reads byte ranges out of an export file.
//
// Every read is a scoped acquisition: the file is opened, locked, read and
// closed within one call, and never held across calls. The file is treated
// as immutable; nothing in this module writes to it.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arloliu/airx/errs"
)

// EndOfSource is the sentinel end offset meaning "read to end-of-file".
const EndOfSource int64 = -1

// ReadAll returns the full content of the file at path.
func ReadAll(path string) ([]byte, error) {
	return ReadRange(path, 0, EndOfSource)
}

// ReadRange returns the bytes of the half-open range [start, end) from the
// file at path. An end of EndOfSource reads everything from start to
// end-of-file; otherwise exactly end-start bytes are returned and a short
// read is a failure.
//
// The file is opened read-only under an exclusive lock that is released on
// every exit path.
//
// Returns:
//   - []byte: the requested bytes
//   - error: errs.ErrSourceNotFound if the file does not exist, or a
//     wrapped errs.ErrRead for any other fault (bad range, failed seek,
//     short read)
func ReadRange(path string, start, end int64) ([]byte, error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: negative start offset %d", errs.ErrRead, start)
	}
	if end != EndOfSource && end < start {
		return nil, fmt.Errorf("%w: end offset %d before start offset %d", errs.ErrRead, end, start)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrSourceNotFound, path)
		}

		return nil, fmt.Errorf("%w: %s", errs.ErrRead, err)
	}
	defer f.Close()

	if err := lockFile(f); err != nil {
		return nil, fmt.Errorf("%w: locking %s: %s", errs.ErrRead, path, err)
	}
	defer unlockFile(f)

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seeking %s to %#x: %s", errs.ErrRead, path, start, err)
	}

	if end == EndOfSource {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %s", errs.ErrRead, path, err)
		}

		return data, nil
	}

	buf := make([]byte, end-start)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("%w: reading %s range [%#x,%#x): %s", errs.ErrRead, path, start, end, err)
	}

	return buf, nil
}
