package get_available_slots

import (
	"context"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// BookingRepository booking queries used by the resolver
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockedSlotRepository blocked-slot queries used by the resolver
type BlockedSlotRepository interface {
	ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error)
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
