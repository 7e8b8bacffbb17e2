package store

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable wraps process-level I/O failures (disk full,
// permission denied) so callers can tell them apart from data problems.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ParseError reports a malformed record line. Loading a file aborts on the
// first malformed line; nothing half-parsed is kept.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
