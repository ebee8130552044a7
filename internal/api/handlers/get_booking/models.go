package get_booking

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64    `json:"id"`
	GuestID            int64    `json:"guestId"`
	ServiceType        string   `json:"serviceType"`
	Date               string   `json:"date"`
	SlotLabel          *string  `json:"slotLabel,omitempty"`
	Status             string   `json:"status"`
	BagNumber          *string  `json:"bagNumber,omitempty"`
	RepairTypes        []string `json:"repairTypes,omitempty"`
	CompletedRepairs   []string `json:"completedRepairs,omitempty"`
	StatusOverride     bool     `json:"statusOverride,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// FromDomain converts a domain booking into the HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		GuestID:            b.GuestID,
		ServiceType:        string(b.ServiceType),
		Date:               b.Date.Format(domain.DateFormat),
		SlotLabel:          b.SlotLabel,
		Status:             string(b.Status),
		BagNumber:          b.BagNumber,
		RepairTypes:        b.RepairTypes,
		CompletedRepairs:   b.CompletedRepairs,
		StatusOverride:     b.StatusOverride,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}
	return resp
}
