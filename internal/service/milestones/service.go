// Package milestones evaluates cumulative service-count milestones and
// guards the one-time celebration per (service, threshold) pair.
package milestones

import (
	"context"
	"fmt"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// Service milestone evaluation over the celebrated-thresholds store
type Service struct {
	store  CelebratedStore
	logger Logger
}

// NewService creates the milestone service
func NewService(store CelebratedStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CheckMilestoneReached returns the smallest threshold t with prev < t <= next.
// A jump across several thresholds celebrates the lowest one crossed:
// prev=50, next=500 yields 100.
func CheckMilestoneReached(prev, next int64) (int64, bool) {
	for _, t := range domain.MilestoneThresholds {
		if prev < t && t <= next {
			return t, true
		}
	}
	return 0, false
}

// ShouldCelebrate reports whether the given cumulative count sits exactly on
// a threshold that has not been celebrated yet for the service. It does not
// mark the threshold; the caller confirms with MarkCelebrated once the
// celebration actually happened.
func (s *Service) ShouldCelebrate(ctx context.Context, service domain.ServiceType, count int64) (int64, bool, error) {
	if !service.IsValid() {
		return 0, false, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, service)
	}
	if count < 0 {
		return 0, false, fmt.Errorf("%w: count must not be negative", ErrInvalidInput)
	}

	if !domain.IsMilestoneThreshold(count) {
		return 0, false, nil
	}

	celebrated, err := s.store.IsCelebrated(ctx, service, count)
	if err != nil {
		s.logger.Error("Milestones.ShouldCelebrate: store check failed for service=%s, threshold=%d: %v",
			service, count, err)
		return 0, false, fmt.Errorf("%w: failed to check celebrated set: %v", ErrInternal, err)
	}
	if celebrated {
		return 0, false, nil
	}

	return count, true, nil
}

// MarkCelebrated records the threshold as celebrated for the service. The
// store set is append-only, so a repeated mark is a no-op and the pair is
// celebrated at most once.
func (s *Service) MarkCelebrated(ctx context.Context, service domain.ServiceType, threshold int64) error {
	if !service.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, service)
	}
	if !domain.IsMilestoneThreshold(threshold) {
		return ErrNotAThreshold
	}

	if err := s.store.MarkCelebrated(ctx, service, threshold); err != nil {
		s.logger.Error("Milestones.MarkCelebrated: store write failed for service=%s, threshold=%d: %v",
			service, threshold, err)
		return fmt.Errorf("%w: failed to mark celebrated: %v", ErrInternal, err)
	}

	s.logger.Info("Milestones.MarkCelebrated: service=%s, threshold=%d", service, threshold)
	return nil
}

// ListCelebrated returns the celebrated thresholds for the service
func (s *Service) ListCelebrated(ctx context.Context, service domain.ServiceType) ([]int64, error) {
	if !service.IsValid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, service)
	}

	thresholds, err := s.store.ListCelebrated(ctx, service)
	if err != nil {
		s.logger.Error("Milestones.ListCelebrated: store read failed for service=%s: %v", service, err)
		return nil, fmt.Errorf("%w: failed to list celebrated set: %v", ErrInternal, err)
	}
	return thresholds, nil
}
