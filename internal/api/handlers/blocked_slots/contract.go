package blocked_slots

import (
	"context"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/service/blockedslots"
)

type BlockedSlotService interface {
	Block(ctx context.Context, params blockedslots.BlockParams) (*domain.BlockedSlot, error)
	Unblock(ctx context.Context, service domain.ServiceType, slotLabel string, date time.Time) error
	List(ctx context.Context, service *domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
