package export

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// BookingRepository booking queries feeding the export
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// DonationRepository donation queries feeding the export
type DonationRepository interface {
	List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error)
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
