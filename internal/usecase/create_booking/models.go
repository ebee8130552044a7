package create_booking

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// Request booking command input
type Request struct {
	GuestID     int64
	ServiceType domain.ServiceType
	Date        time.Time // date only; zero means today
	SlotLabel   *string   // nil on a slotted service means "next available"
	Waitlist    bool      // shower-only capacity-exempt booking
	BagNumber   *string   // laundry intake
	RepairTypes []string  // bicycle repair checklist items
	Notes       *string
}

// Response the created booking, returned for the front-desk action log
type Response struct {
	ID               int64
	GuestID          int64
	ServiceType      domain.ServiceType
	Date             time.Time
	SlotLabel        *string
	Status           string
	BagNumber        *string
	RepairTypes      []string
	CompletedRepairs []string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:               b.ID,
		GuestID:          b.GuestID,
		ServiceType:      b.ServiceType,
		Date:             b.Date,
		SlotLabel:        b.SlotLabel,
		Status:           string(b.Status),
		BagNumber:        b.BagNumber,
		RepairTypes:      b.RepairTypes,
		CompletedRepairs: b.CompletedRepairs,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
