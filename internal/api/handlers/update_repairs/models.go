package update_repairs

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// UpdateRepairsRequest HTTP request model
type UpdateRepairsRequest struct {
	CompletedRepairs []string `json:"completedRepairs" validate:"max=10"`
}

// RepairsResponse HTTP response model
type RepairsResponse struct {
	ID               int64    `json:"id"`
	Status           string   `json:"status"`
	RepairTypes      []string `json:"repairTypes"`
	CompletedRepairs []string `json:"completedRepairs"`
	StatusOverride   bool     `json:"statusOverride"`
	UpdatedAt        string   `json:"updatedAt"`
}

// FromDomain converts a domain booking into the HTTP response
func FromDomain(b *domain.Booking) *RepairsResponse {
	return &RepairsResponse{
		ID:               b.ID,
		Status:           string(b.Status),
		RepairTypes:      b.RepairTypes,
		CompletedRepairs: b.CompletedRepairs,
		StatusOverride:   b.StatusOverride,
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}
