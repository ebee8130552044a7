package get_available_slots

import (
	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// resolveAvailability computes the per-slot state for the day.
//
// Occupancy counts only capacity-counting bookings (not cancelled, not
// waitlisted) whose slot label matches exactly. The blocked flag comes from
// the admin block set and is independent of occupancy: blocking never removes
// existing bookings, and a full slot stays reported as full even when also
// blocked, since those are distinct facts for the front desk.
func resolveAvailability(
	labels []string,
	capacity int,
	bookings []*domain.Booking,
	blocks []*domain.BlockedSlot,
) []domain.SlotAvailability {
	blocked := blockedSet(blocks)

	result := make([]domain.SlotAvailability, len(labels))
	for i, label := range labels {
		occupancy := countSlotOccupancy(label, bookings)

		slot := domain.SlotAvailability{
			Label:     label,
			Occupancy: occupancy,
			Capacity:  capacity,
			Blocked:   blocked[label],
		}
		slot.State = deriveState(&slot)
		result[i] = slot
	}
	return result
}

// deriveState maps occupancy and block status to the reported slot state.
// Full wins over blocked in reporting; for booking eligibility both bar the
// slot (see SlotAvailability.IsBookable).
func deriveState(slot *domain.SlotAvailability) domain.SlotState {
	switch {
	case slot.Occupancy >= slot.Capacity:
		return domain.SlotFull
	case slot.Blocked:
		return domain.SlotBlocked
	case slot.Occupancy == 0:
		return domain.SlotOpen
	default:
		return domain.SlotNearlyFull
	}
}

// countSlotOccupancy counts capacity-counting bookings attached to the slot
// by exact label equality.
func countSlotOccupancy(label string, bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if !booking.CountsTowardCapacity() {
			continue
		}
		if booking.SlotLabel != nil && *booking.SlotLabel == label {
			count++
		}
	}
	return count
}

func blockedSet(blocks []*domain.BlockedSlot) map[string]bool {
	set := make(map[string]bool, len(blocks))
	for _, block := range blocks {
		set[block.SlotLabel] = true
	}
	return set
}

// nextAvailableSlot returns the first bookable slot in generator order,
// or nil when the day is fully booked.
func nextAvailableSlot(slots []domain.SlotAvailability) *string {
	for i := range slots {
		if slots[i].IsBookable() {
			label := slots[i].Label
			return &label
		}
	}
	return nil
}
