package get_service_bookings

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/service/bookings"
)

type BookingService interface {
	List(ctx context.Context, params bookings.ListParams) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
