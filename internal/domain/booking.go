package domain

import "time"

// BookingStatus represents the status of a service booking.
// Each service type uses its own subset of statuses, see StatusesForService.
type BookingStatus string

const (
	// Shower
	StatusBooked     BookingStatus = "booked"
	StatusAwaiting   BookingStatus = "awaiting"
	StatusWaitlisted BookingStatus = "waitlisted"
	StatusDone       BookingStatus = "done"

	// Laundry (on-site)
	StatusWaiting  BookingStatus = "waiting"
	StatusWasher   BookingStatus = "washer"
	StatusDryer    BookingStatus = "dryer"
	StatusPickedUp BookingStatus = "picked_up"

	// Laundry (off-site)
	StatusPending         BookingStatus = "pending"
	StatusTransported     BookingStatus = "transported"
	StatusReturned        BookingStatus = "returned"
	StatusOffsitePickedUp BookingStatus = "offsite_picked_up"

	// Bicycle repair (shares pending/done)
	StatusInProgress BookingStatus = "in_progress"

	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one guest's use of a service on a date
type Booking struct {
	ID          int64
	GuestID     int64
	ServiceType ServiceType
	Date        time.Time // date only, time part is zero
	SlotLabel   *string   // nil for queue-based services and waitlisted bookings
	Status      BookingStatus

	// Laundry metadata
	BagNumber *string

	// Bicycle repair metadata
	RepairTypes      []string
	CompletedRepairs []string
	StatusOverride   bool // staff picked the status by hand; checklist derivation is suspended

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive reports whether the booking is still live (not cancelled)
func (b *Booking) IsActive() bool {
	return !b.IsCancelled()
}

// CountsTowardCapacity reports whether the booking occupies a spot in its
// slot. Cancelled and waitlisted bookings are capacity-exempt.
func (b *Booking) CountsTowardCapacity() bool {
	return b.IsActive() && b.Status != StatusWaitlisted
}

// IsFinished reports whether the booking reached a terminal service status.
// Finished bookings drop out of active views but stay in history.
func (b *Booking) IsFinished() bool {
	switch b.Status {
	case StatusDone, StatusPickedUp, StatusOffsitePickedUp:
		return true
	}
	return false
}

// IsStillPending reports whether the booking would be swept by an
// end-of-service-day bulk cancel: live and not yet finished.
func (b *Booking) IsStillPending() bool {
	return b.IsActive() && !b.IsFinished()
}

// Status enums per service type, in workflow order
var (
	showerStatuses = []BookingStatus{
		StatusBooked, StatusAwaiting, StatusWaitlisted, StatusDone,
	}
	laundryStatuses = []BookingStatus{
		StatusWaiting, StatusWasher, StatusDryer, StatusDone, StatusPickedUp,
	}
	laundryOffsiteStatuses = []BookingStatus{
		StatusPending, StatusTransported, StatusReturned, StatusOffsitePickedUp,
	}
	bicycleStatuses = []BookingStatus{
		StatusPending, StatusInProgress, StatusDone,
	}
)

// StatusesForService returns the status enum of the given service in
// workflow order. Cancelled is reachable from any of them via Cancel and is
// not part of the transition surface.
func StatusesForService(service ServiceType) []BookingStatus {
	switch service {
	case ServiceShower:
		return showerStatuses
	case ServiceLaundry:
		return laundryStatuses
	case ServiceLaundryOffsite:
		return laundryOffsiteStatuses
	case ServiceBicycle:
		return bicycleStatuses
	default:
		return nil
	}
}

// ValidStatusForService reports whether status belongs to the service's enum
func ValidStatusForService(service ServiceType, status BookingStatus) bool {
	for _, s := range StatusesForService(service) {
		if s == status {
			return true
		}
	}
	return false
}

// InitialStatus returns the status a fresh booking starts in
func InitialStatus(service ServiceType) BookingStatus {
	switch service {
	case ServiceShower:
		return StatusBooked
	case ServiceLaundry:
		return StatusWaiting
	default:
		return StatusPending
	}
}

// RequiresBagNumberToLeave reports whether leaving status on the given
// service requires a bag number attached to the booking. Applies to the
// intake status of both laundry flows.
func RequiresBagNumberToLeave(service ServiceType, status BookingStatus) bool {
	switch service {
	case ServiceLaundry:
		return status == StatusWaiting
	case ServiceLaundryOffsite:
		return status == StatusPending
	}
	return false
}

// DeriveBicycleStatus computes the repair status from the checklist:
// done iff every declared repair is complete, pending iff none are,
// in_progress otherwise.
func DeriveBicycleStatus(repairTypes, completedRepairs []string) BookingStatus {
	switch {
	case len(completedRepairs) == 0:
		return StatusPending
	case len(completedRepairs) >= len(repairTypes):
		return StatusDone
	default:
		return StatusInProgress
	}
}

// BookingsFilter filters booking queries by service, date range and status
type BookingsFilter struct {
	ServiceType     ServiceType
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // include cancelled bookings
}
