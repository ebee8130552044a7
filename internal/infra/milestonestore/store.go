// Package milestonestore persists the set of already-celebrated milestone
// thresholds per service type in Redis. The set is append-only: a threshold
// is added once first celebrated and never removed, which guarantees each
// (service, threshold) pair is celebrated at most once.
package milestonestore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// ErrStore is returned when Redis rejects an operation
var ErrStore = errors.New("milestonestore: redis operation failed")

// Store Redis-backed celebrated-thresholds set
type Store struct {
	client *redis.Client
}

// New creates a milestone store over an existing Redis client
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(service domain.ServiceType) string {
	return "milestones:shown:" + string(service)
}

// IsCelebrated reports whether the threshold was already celebrated for the service
func (s *Store) IsCelebrated(ctx context.Context, service domain.ServiceType, threshold int64) (bool, error) {
	member := strconv.FormatInt(threshold, 10)
	shown, err := s.client.SIsMember(ctx, key(service), member).Result()
	if err != nil {
		return false, fmt.Errorf("%w: SISMEMBER %s: %v", ErrStore, key(service), err)
	}
	return shown, nil
}

// MarkCelebrated records the threshold as celebrated for the service.
// Adding an already-present member is a no-op.
func (s *Store) MarkCelebrated(ctx context.Context, service domain.ServiceType, threshold int64) error {
	member := strconv.FormatInt(threshold, 10)
	if err := s.client.SAdd(ctx, key(service), member).Err(); err != nil {
		return fmt.Errorf("%w: SADD %s: %v", ErrStore, key(service), err)
	}
	return nil
}

// ListCelebrated returns all celebrated thresholds for the service, unordered
func (s *Store) ListCelebrated(ctx context.Context, service domain.ServiceType) ([]int64, error) {
	members, err := s.client.SMembers(ctx, key(service)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: SMEMBERS %s: %v", ErrStore, key(service), err)
	}

	thresholds := make([]int64, 0, len(members))
	for _, m := range members {
		v, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			// Skip malformed members rather than failing the whole read
			continue
		}
		thresholds = append(thresholds, v)
	}
	return thresholds, nil
}
