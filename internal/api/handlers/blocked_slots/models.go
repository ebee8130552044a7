package blocked_slots

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// BlockSlotRequest HTTP request model for blocking a slot
type BlockSlotRequest struct {
	ServiceType string  `json:"serviceType" validate:"required"`
	SlotLabel   string  `json:"slotLabel" validate:"required"`
	Date        string  `json:"date,omitempty"` // empty means today
	Reason      *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	Force       bool    `json:"force,omitempty"` // confirm blocking an occupied slot
}

// UnblockSlotRequest HTTP request model for removing a block
type UnblockSlotRequest struct {
	ServiceType string `json:"serviceType" validate:"required"`
	SlotLabel   string `json:"slotLabel" validate:"required"`
	Date        string `json:"date,omitempty"`
}

// BlockedSlotResponse HTTP response model
type BlockedSlotResponse struct {
	ID          int64   `json:"id"`
	ServiceType string  `json:"serviceType"`
	SlotLabel   string  `json:"slotLabel"`
	Date        string  `json:"date"`
	Reason      *string `json:"reason,omitempty"`
	CreatedBy   *int64  `json:"createdBy,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Date         string                `json:"date"`
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomain converts a domain blocked slot into the HTTP response
func FromDomain(b *domain.BlockedSlot) BlockedSlotResponse {
	return BlockedSlotResponse{
		ID:          b.ID,
		ServiceType: string(b.ServiceType),
		SlotLabel:   b.SlotLabel,
		Date:        b.Date.Format(domain.DateFormat),
		Reason:      b.Reason,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
