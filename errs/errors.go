// Package errs defines the sentinel errors shared across the airx packages.
//
// Callers match them with errors.Is; the producing packages wrap them with
// fmt.Errorf("...: %w", ...) to attach context.
package errs

import "errors"

var (
	// ErrSourceNotFound indicates the export file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrRead indicates any read-time fault other than a missing file:
	// a failed open, seek or read, a short read against an explicit end
	// offset, or an invalid offset range.
	ErrRead = errors.New("source read failed")

	// ErrEmptyPattern indicates a delimiter pattern with no bytes.
	ErrEmptyPattern = errors.New("delimiter pattern is empty")
)
