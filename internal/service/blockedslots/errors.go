package blockedslots

import "errors"

var (
	// ErrServiceNotSlotted is returned when the service has no slot grid
	ErrServiceNotSlotted = errors.New("blockedslots: service has no slots")

	// ErrUnknownSlot is returned when the slot label is not in the service's
	// generated slot list
	ErrUnknownSlot = errors.New("blockedslots: unknown slot label")

	// ErrSlotHasBookings is returned when blocking a slot with active
	// bookings without the force flag; the caller confirms and retries
	ErrSlotHasBookings = errors.New("blockedslots: slot has active bookings")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("blockedslots: invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("blockedslots: internal error")
)
