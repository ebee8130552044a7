package get_available_slots

import (
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	getAvailableSlots "github.com/hopes-corner/HC-OpsService/internal/usecase/get_available_slots"
)

// SlotResponse one slot of the day with its resolved state
type SlotResponse struct {
	Label     string `json:"label"`
	Occupancy int    `json:"occupancy"`
	Capacity  int    `json:"capacity"`
	State     string `json:"state"` // open | nearly_full | full | blocked
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ServiceType     string         `json:"serviceType"`
	Date            string         `json:"date"`
	Slots           []SlotResponse `json:"slots"`
	NextAvailable   *string        `json:"nextAvailable,omitempty"`
	FullyBooked     bool           `json:"fullyBooked"`
	WaitlistOffered bool           `json:"waitlistOffered"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Label:     slot.Label,
			Occupancy: slot.Occupancy,
			Capacity:  slot.Capacity,
			State:     string(slot.State),
		})
	}

	return &AvailabilityResponse{
		ServiceType:     string(resp.ServiceType),
		Date:            resp.Date.Format(domain.DateFormat),
		Slots:           slots,
		NextAvailable:   resp.NextAvailable,
		FullyBooked:     resp.FullyBooked,
		WaitlistOffered: resp.WaitlistOffered,
	}
}
