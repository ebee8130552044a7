package transition_status

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/service/bookings"
)

type BookingService interface {
	Transition(ctx context.Context, params bookings.TransitionParams) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
