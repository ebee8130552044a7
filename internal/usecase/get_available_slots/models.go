package get_available_slots

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// Request availability query for a slotted service on a date
type Request struct {
	ServiceType domain.ServiceType
	Date        time.Time // date only
}

// Response resolved availability for every slot of the day
type Response struct {
	ServiceType domain.ServiceType
	Date        time.Time
	Slots       []domain.SlotAvailability

	// NextAvailable is the first bookable slot in generator order, nil when
	// the day is fully booked.
	NextAvailable *string

	// FullyBooked is set when no slot is bookable; for showers the front
	// desk then offers the waitlist.
	FullyBooked     bool
	WaitlistOffered bool
}
