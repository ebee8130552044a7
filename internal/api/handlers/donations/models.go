package donations

import (
	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// CreateDonationRequest HTTP request model
type CreateDonationRequest struct {
	DonorName string  `json:"donorName" validate:"required,min=1,max=120"`
	Category  string  `json:"category" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	Unit      string  `json:"unit" validate:"required"`
	Note      *string `json:"note,omitempty" validate:"omitempty,max=500"`
	Date      string  `json:"date,omitempty"` // empty means today
}

// DonationResponse HTTP response model
type DonationResponse struct {
	ID        int64   `json:"id"`
	DonorName string  `json:"donorName"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Note      *string `json:"note,omitempty"`
	Date      string  `json:"date"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Donations []DonationResponse `json:"donations"`
}

// FromDomain converts a domain donation into the HTTP response
func FromDomain(d *domain.Donation) DonationResponse {
	return DonationResponse{
		ID:        d.ID,
		DonorName: d.DonorName,
		Category:  string(d.Category),
		Quantity:  d.Quantity,
		Unit:      d.Unit,
		Note:      d.Note,
		Date:      d.Date.Format(domain.DateFormat),
	}
}
