package get_service_bookings

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// BookingResponse HTTP response model for one listed booking
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
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	ServiceType string            `json:"serviceType"`
	Date        string            `json:"date"`
	Bookings    []BookingResponse `json:"bookings"`
}

// FromDomain converts the listed bookings into the HTTP response
func FromDomain(service domain.ServiceType, date time.Time, items []*domain.Booking) *ListResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, BookingResponse{
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
		})
	}

	return &ListResponse{
		ServiceType: string(service),
		Date:        date.Format(domain.DateFormat),
		Bookings:    out,
	}
}
