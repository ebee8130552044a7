package end_service_day

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("end_service_day: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("end_service_day: internal error")
)
