//go:build unix

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive advisory lock on f. The lock is held for the
// duration of one read and released by unlockFile before the file closes.
func lockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

func unlockFile(f *os.File) {
	// Close drops the lock anyway; explicit release keeps the scope tight.
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
