// Package repository owns the in-memory collections. All mutation of the
// movie, session and ticket sets goes through these interfaces; nothing
// outside this package touches the underlying slices.
//
// The sentinel errors below are reused across the repositories so higher
// layers can distinguish failure outcomes with errors.Is.
package repository

import "errors"

// ErrNotFound is returned when a referenced movie, session or ticket is
// absent from the in-memory collection.
var ErrNotFound = errors.New("not found")

// ErrDuplicateTitle is returned when adding a movie whose title is already
// present. Titles are the primary key of the persisted movie records, so
// duplicates would silently collapse on save.
var ErrDuplicateTitle = errors.New("duplicate title")

// ErrDuplicateSession is returned when adding a session with the same movie
// and start time as an existing one, which is the persisted session key.
var ErrDuplicateSession = errors.New("duplicate session")
