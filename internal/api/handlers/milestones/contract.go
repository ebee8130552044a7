package milestones

import (
	"context"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

type MilestoneService interface {
	ShouldCelebrate(ctx context.Context, service domain.ServiceType, count int64) (int64, bool, error)
	MarkCelebrated(ctx context.Context, service domain.ServiceType, threshold int64) error
	ListCelebrated(ctx context.Context, service domain.ServiceType) ([]int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
