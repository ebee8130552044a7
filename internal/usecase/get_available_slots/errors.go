package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrServiceNotSlotted is returned for queue-based services, which have
	// no slot grid to resolve
	ErrServiceNotSlotted = errors.New("get_available_slots: service has no slot schedule")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_available_slots: internal error")
)
