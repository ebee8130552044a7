package blockedslots

import (
	"context"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// BlockedSlotRepository blocked-slot storage operations
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	DeleteByTuple(ctx context.Context, service domain.ServiceType, slotLabel string, date time.Time) error
	ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// BookingRepository booking queries used to warn about occupied slots
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BlockParams input of a block command
type BlockParams struct {
	ServiceType domain.ServiceType
	SlotLabel   string
	Date        time.Time
	Reason      *string
	CreatedBy   *int64
	Force       bool // block even though the slot has active bookings
}
