package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrBookingCancelled is returned on a transition against a cancelled
	// booking; cancelled is terminal
	ErrBookingCancelled = errors.New("bookings: booking is cancelled")

	// ErrInvalidStatus is returned when the target status is not part of the
	// booking's service workflow
	ErrInvalidStatus = errors.New("bookings: status not valid for service")

	// ErrBagNumberRequired is returned when laundry tries to leave intake
	// without a bag number
	ErrBagNumberRequired = errors.New("bookings: bag number required to leave intake")

	// ErrOverrideNotSupported is returned when a manual status override is
	// requested for a service without checklist derivation
	ErrOverrideNotSupported = errors.New("bookings: status override only applies to bicycle repairs")

	// ErrUnknownRepair is returned when a completed repair is not on the
	// booking's declared checklist
	ErrUnknownRepair = errors.New("bookings: completed repair not on the checklist")

	// ErrNotBicycle is returned when a checklist update targets a
	// non-bicycle booking
	ErrNotBicycle = errors.New("bookings: checklist updates only apply to bicycle repairs")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings: internal error")
)
