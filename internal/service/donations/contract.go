package donations

import (
	"context"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// DonationRepository donation storage operations
type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	GetByID(ctx context.Context, id int64) (*domain.Donation, error)
	List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error)
	Delete(ctx context.Context, id int64) error
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateParams input of a donation entry
type CreateParams struct {
	DonorName string
	Category  domain.DonationCategory
	Quantity  float64
	Unit      string
	Note      *string
	Date      time.Time // date only; zero means today
}
