package cancel_booking

// CancelBookingRequest HTTP request model. The body as a whole is optional.
type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Cancelled bool   `json:"cancelled"`
}
