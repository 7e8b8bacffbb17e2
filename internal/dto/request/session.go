package request

type AddSessionRequest struct {
	MovieID   string `validate:"required,uuid"`
	StartTime string `validate:"required"`
	// TotalSeats falls back to the configured default when zero.
	TotalSeats int `validate:"omitempty,min=1,max=999"`
}

type EditSessionRequest struct {
	StartTime string `validate:"required"`
}
