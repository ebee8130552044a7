package domain

// SlotState derived state of a slot for the availability view
type SlotState string

const (
	SlotOpen       SlotState = "open"
	SlotNearlyFull SlotState = "nearly_full"
	SlotFull       SlotState = "full"
	SlotBlocked    SlotState = "blocked"
)

// SlotAvailability is the resolved state of a single slot on a date
type SlotAvailability struct {
	Label     string
	Occupancy int // capacity-counting bookings with this exact label
	Capacity  int
	Blocked   bool
	State     SlotState
}

// IsBookable reports whether a new booking may be placed in the slot.
// A blocked slot is never bookable, even under capacity.
func (s *SlotAvailability) IsBookable() bool {
	return !s.Blocked && s.Occupancy < s.Capacity
}

// HasSpace reports whether the slot is under capacity, ignoring blocks
func (s *SlotAvailability) HasSpace() bool {
	return s.Occupancy < s.Capacity
}
