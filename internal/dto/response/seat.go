package response

// SeatStatusResponse is the per-session view over the fixed venue range:
// available is the venue range minus the occupied seats. Sold seats are
// reported separately and do not reduce availability.
type SeatStatusResponse struct {
	Available []int
	Occupied  []int
	Sold      []int
}

// MarkSeatsResponse reports the outcome of an administrative block,
// seat by seat.
type MarkSeatsResponse struct {
	Marked          []int
	AlreadyOccupied []int
}
