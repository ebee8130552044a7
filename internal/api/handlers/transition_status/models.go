package transition_status

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status    string  `json:"status" validate:"required"`
	BagNumber *string `json:"bagNumber,omitempty" validate:"omitempty,min=1,max=20"`
	Override  bool    `json:"override,omitempty"` // bicycle manual status pick
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64    `json:"id"`
	GuestID          int64    `json:"guestId"`
	ServiceType      string   `json:"serviceType"`
	Date             string   `json:"date"`
	SlotLabel        *string  `json:"slotLabel,omitempty"`
	Status           string   `json:"status"`
	BagNumber        *string  `json:"bagNumber,omitempty"`
	RepairTypes      []string `json:"repairTypes,omitempty"`
	CompletedRepairs []string `json:"completedRepairs,omitempty"`
	StatusOverride   bool     `json:"statusOverride,omitempty"`
	UpdatedAt        string   `json:"updatedAt"`
}

// FromDomain converts a domain booking into the HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		GuestID:          b.GuestID,
		ServiceType:      string(b.ServiceType),
		Date:             b.Date.Format(domain.DateFormat),
		SlotLabel:        b.SlotLabel,
		Status:           string(b.Status),
		BagNumber:        b.BagNumber,
		RepairTypes:      b.RepairTypes,
		CompletedRepairs: b.CompletedRepairs,
		StatusOverride:   b.StatusOverride,
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}
