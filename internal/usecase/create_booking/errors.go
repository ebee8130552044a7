package create_booking

import "errors"

var (
	// ErrGuestNotFound is returned when the roster has no such guest
	ErrGuestNotFound = errors.New("create_booking: guest not found")

	// ErrGuestBanned is returned when the guest is banned from the service
	ErrGuestBanned = errors.New("create_booking: guest is banned from this service")

	// ErrUnknownSlot is returned when the slot label is not in the
	// service's generated slot list
	ErrUnknownSlot = errors.New("create_booking: unknown slot label")

	// ErrSlotBlocked is returned when the slot is blocked by an admin
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrSlotFull is returned when the slot is at capacity
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrFullyBooked is returned when no slot is bookable; for showers the
	// caller offers the waitlist
	ErrFullyBooked = errors.New("create_booking: no slots available")

	// ErrWaitlistNotSupported is returned on a waitlist request for a
	// service without one
	ErrWaitlistNotSupported = errors.New("create_booking: service has no waitlist")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
