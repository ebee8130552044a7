package domain

import "time"

// DonationCategory classifies a logged donation
type DonationCategory string

const (
	DonationFood     DonationCategory = "food"
	DonationClothing DonationCategory = "clothing"
	DonationHygiene  DonationCategory = "hygiene"
	DonationFunds    DonationCategory = "funds"
	DonationOther    DonationCategory = "other"
)

// IsValid reports whether c is a known donation category
func (c DonationCategory) IsValid() bool {
	switch c {
	case DonationFood, DonationClothing, DonationHygiene, DonationFunds, DonationOther:
		return true
	}
	return false
}

// Donation is one logged donation entry
type Donation struct {
	ID        int64
	DonorName string
	Category  DonationCategory
	Quantity  float64
	Unit      string // "lbs", "items", "usd", ...
	Note      *string
	Date      time.Time // date only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DonationsFilter filters donation queries by category and date range
type DonationsFilter struct {
	Category  *DonationCategory
	StartDate *time.Time
	EndDate   *time.Time
}
