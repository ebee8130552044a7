package create_booking

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	createBooking "github.com/hopes-corner/HC-OpsService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestID     int64    `json:"guestId" validate:"required,gt=0"`
	ServiceType string   `json:"serviceType" validate:"required"`
	Date        string   `json:"date,omitempty"`      // "2026-08-29", empty means today
	SlotLabel   *string  `json:"slotLabel,omitempty"` // omitted on a slotted service means next available
	BagNumber   *string  `json:"bagNumber,omitempty" validate:"omitempty,min=1,max=20"`
	RepairTypes []string `json:"repairTypes,omitempty" validate:"max=10"`
	Notes       *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
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
	Notes            *string  `json:"notes,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest(waitlist bool) (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createBooking.Request{
		GuestID:     r.GuestID,
		ServiceType: domain.ServiceType(r.ServiceType),
		Date:        date,
		SlotLabel:   r.SlotLabel,
		Waitlist:    waitlist,
		BagNumber:   r.BagNumber,
		RepairTypes: r.RepairTypes,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		GuestID:          resp.GuestID,
		ServiceType:      string(resp.ServiceType),
		Date:             resp.Date.Format(domain.DateFormat),
		SlotLabel:        resp.SlotLabel,
		Status:           resp.Status,
		BagNumber:        resp.BagNumber,
		RepairTypes:      resp.RepairTypes,
		CompletedRepairs: resp.CompletedRepairs,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
