package create_booking

import (
	"context"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	"github.com/hopes-corner/HC-OpsService/internal/integrations/guestroster"
)

// BookingRepository booking commands and queries used by the flow
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockedSlotRepository blocked-slot queries used by the flow
type BlockedSlotRepository interface {
	ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error)
}

// GuestRosterClient external guest-roster collaborator
type GuestRosterClient interface {
	GetGuest(ctx context.Context, guestID int64) (*guestroster.Guest, error)
}

// EventPublisher publishes booking lifecycle events
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager runs the capacity check and insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider current-time source, swappable in tests
type TimeProvider interface {
	Now() time.Time
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
