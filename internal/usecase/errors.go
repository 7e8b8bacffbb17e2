package usecase

import "errors"

// Outcome sentinels for the seat ledger. All are recoverable at the call
// site; none of them leaves state changed.

// ErrSeatUnavailable is returned when a sale is refused: the seat number is
// out of range for the session or the seat already has an active ticket.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrNotReturnable is returned when a ticket's session has already started.
var ErrNotReturnable = errors.New("ticket not returnable")
