// Package kernel's error taxonomy: sentinel errors for the conditions
// classified by the specification (BadId, DoubleBorrow), wrapped with
// operation context via fmt.Errorf so callers can still match them with
// errors.Is.
package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrBadID is returned when a primitive id is out of range or has been
	// tombstoned by a prior destroy call.
	ErrBadID = errors.New("kernel: no such primitive id")

	// ErrDoubleBorrow indicates a cell's exclusive-access guard was
	// re-entered while already held. Always fatal: it means the core has a
	// bug, not that a caller misused the public API. No code path in this
	// package returns it: cell is built on sync.Mutex, which blocks on a
	// re-entered guard instead of reporting it.
	ErrDoubleBorrow = errors.New("kernel: cell borrowed twice")
)

// wrapf attaches operation context to a sentinel error while preserving
// errors.Is/errors.As matching against it.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

// badID reports a BadId fault for the given kind/id pair.
func badID(kind string, id int) error {
	return wrapf(ErrBadID, "%s id %d", kind, id)
}
