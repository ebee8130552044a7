package milestones

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// CelebratedStore persisted set of already-celebrated thresholds
type CelebratedStore interface {
	IsCelebrated(ctx context.Context, service domain.ServiceType, threshold int64) (bool, error)
	MarkCelebrated(ctx context.Context, service domain.ServiceType, threshold int64) error
	ListCelebrated(ctx context.Context, service domain.ServiceType) ([]int64, error)
}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
