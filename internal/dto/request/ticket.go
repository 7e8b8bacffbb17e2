package request

type SellTicketRequest struct {
	SessionID string `validate:"required,uuid"`
	Seat      int    `validate:"required,min=1"`
}

type ReturnTicketRequest struct {
	TicketID string `validate:"required,uuid"`
}

type MarkSeatsRequest struct {
	SessionID string `validate:"required,uuid"`
	Seats     []int  `validate:"required,min=1,dive,min=1"`
}
