package create_booking

import (
	"fmt"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if req.Waitlist && !req.ServiceType.SupportsWaitlist() {
		return ErrWaitlistNotSupported
	}

	if req.SlotLabel != nil && !req.ServiceType.IsSlotted() {
		return fmt.Errorf("%w: service %q does not take slot bookings", ErrInvalidInput, req.ServiceType)
	}

	if req.BagNumber != nil {
		if *req.BagNumber == "" || len(*req.BagNumber) > domain.MaxBagNumberLength {
			return fmt.Errorf("%w: bag number must be 1-%d characters", ErrInvalidInput, domain.MaxBagNumberLength)
		}
	}

	if len(req.RepairTypes) > 0 && req.ServiceType != domain.ServiceBicycle {
		return fmt.Errorf("%w: repair types only apply to bicycle bookings", ErrInvalidInput)
	}
	if len(req.RepairTypes) > domain.MaxRepairTypes {
		return fmt.Errorf("%w: at most %d repair types", ErrInvalidInput, domain.MaxRepairTypes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
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
