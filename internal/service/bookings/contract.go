package bookings

import (
	"context"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
)

// BookingRepository storage operations the service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, override bool) error
	SetBagNumber(ctx context.Context, id int64, bagNumber string) error
	UpdateRepairs(ctx context.Context, id int64, completed []string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// EventPublisher publishes booking lifecycle events
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TransitionParams input of a status transition
type TransitionParams struct {
	BookingID int64
	Status    domain.BookingStatus
	BagNumber *string // laundry intake may attach the bag on leaving the first status
	Override  bool    // bicycle only: staff-picked status suspends checklist derivation
}

// ListParams filters the service/date listing
type ListParams struct {
	ServiceType     domain.ServiceType
	Date            time.Time
	Status          *domain.BookingStatus
	IncludeInactive bool
}
