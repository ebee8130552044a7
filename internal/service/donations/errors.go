package donations

import "errors"

var (
	// ErrDonationNotFound is returned when the donation does not exist
	ErrDonationNotFound = errors.New("donations: donation not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("donations: invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("donations: internal error")
)
