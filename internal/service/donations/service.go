// Package donations logs incoming donations for the day ledger.
package donations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	donationRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/donation"
)

// Service donation CRUD over the repository
type Service struct {
	repository DonationRepository
	logger     Logger
}

// NewService creates the donation service
func NewService(repository DonationRepository, logger Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// Create logs a donation entry
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Donation, error) {
	if params.DonorName == "" || len(params.DonorName) > domain.MaxDonorNameLength {
		return nil, fmt.Errorf("%w: donor name must be 1-%d characters", ErrInvalidInput, domain.MaxDonorNameLength)
	}
	if !params.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown donation category %q", ErrInvalidInput, params.Category)
	}
	if params.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if params.Unit == "" {
		return nil, fmt.Errorf("%w: unit is required", ErrInvalidInput)
	}
	if params.Note != nil && len(*params.Note) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: note longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	donation := &domain.Donation{
		DonorName: params.DonorName,
		Category:  params.Category,
		Quantity:  params.Quantity,
		Unit:      params.Unit,
		Note:      params.Note,
		Date:      date,
	}

	created, err := s.repository.Create(ctx, donation)
	if err != nil {
		s.logger.Error("Donations.Create: failed to create donation: %v", err)
		return nil, fmt.Errorf("%w: failed to create donation: %v", ErrInternal, err)
	}

	s.logger.Info("Donations.Create: id=%d, donor=%q, category=%s", created.ID, created.DonorName, created.Category)
	return created, nil
}

// List returns donations matching the filter, newest first
func (s *Service) List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown donation category %q", ErrInvalidInput, *filter.Category)
	}

	donations, err := s.repository.List(ctx, filter)
	if err != nil {
		s.logger.Error("Donations.List: failed to list donations: %v", err)
		return nil, fmt.Errorf("%w: failed to list donations: %v", ErrInternal, err)
	}
	return donations, nil
}

// Delete removes a donation entry permanently. The confirmation step lives
// in the client; here a missing id is an error, not a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: donation id must be positive", ErrInvalidInput)
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, donationRepo.ErrDonationNotFound) {
			return ErrDonationNotFound
		}
		s.logger.Error("Donations.Delete: failed to delete donation id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to delete donation: %v", ErrInternal, err)
	}

	s.logger.Info("Donations.Delete: id=%d", id)
	return nil
}
