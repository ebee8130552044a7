package donations

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	donationSvc "github.com/hopes-corner/HC-OpsService/internal/service/donations"
)

type DonationService interface {
	Create(ctx context.Context, params donationSvc.CreateParams) (*domain.Donation, error)
	List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
