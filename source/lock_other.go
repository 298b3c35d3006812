//go:build !unix

package source

import "os"

// Advisory file locking is unix-only; elsewhere a read proceeds unlocked.
func lockFile(_ *os.File) error { return nil }

func unlockFile(_ *os.File) {}
