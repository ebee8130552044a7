package update_repairs

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

type BookingService interface {
	UpdateChecklist(ctx context.Context, bookingID int64, completed []string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
