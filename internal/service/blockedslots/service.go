// Package blockedslots manages admin slot blocks. A block only bars new
// bookings for its (service, slot, date) tuple; it never cancels bookings
// already in the slot.
package blockedslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	blockRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/blockedslot"
)

// Service blocked-slot commands and queries
type Service struct {
	blockRepository   BlockedSlotRepository
	bookingRepository BookingRepository
	logger            Logger
}

// NewService creates the blocked-slot service
func NewService(blockRepository BlockedSlotRepository, bookingRepository BookingRepository, logger Logger) *Service {
	return &Service{
		blockRepository:   blockRepository,
		bookingRepository: bookingRepository,
		logger:            logger,
	}
}

// Block blocks a slot for new bookings. When the slot already holds active
// bookings the call fails with ErrSlotHasBookings unless Force is set; the
// front desk uses that round trip as its confirmation step. Blocking an
// already-blocked slot is a no-op success.
func (s *Service) Block(ctx context.Context, params BlockParams) (*domain.BlockedSlot, error) {
	if err := s.validateTuple(params.ServiceType, params.SlotLabel); err != nil {
		return nil, err
	}
	if params.Reason != nil && len(*params.Reason) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: reason longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	date := dateOnly(params.Date)

	if !params.Force {
		occupied, err := s.slotHasActiveBookings(ctx, params.ServiceType, params.SlotLabel, date)
		if err != nil {
			return nil, err
		}
		if occupied {
			s.logger.Warn("BlockedSlots.Block: slot %q on %s has active bookings, force required",
				params.SlotLabel, date.Format(domain.DateFormat))
			return nil, ErrSlotHasBookings
		}
	}

	block := &domain.BlockedSlot{
		ServiceType: params.ServiceType,
		SlotLabel:   params.SlotLabel,
		Date:        date,
		Reason:      params.Reason,
		CreatedBy:   params.CreatedBy,
	}

	created, err := s.blockRepository.Create(ctx, block)
	if err != nil {
		s.logger.Error("BlockedSlots.Block: failed to create block: %v", err)
		return nil, fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}

	s.logger.Info("BlockedSlots.Block: service=%s, slot=%q, date=%s",
		params.ServiceType, params.SlotLabel, date.Format(domain.DateFormat))
	return created, nil
}

// Unblock removes the block for the tuple. Unblocking a slot that is not
// blocked is a no-op success.
func (s *Service) Unblock(ctx context.Context, service domain.ServiceType, slotLabel string, date time.Time) error {
	if err := s.validateTuple(service, slotLabel); err != nil {
		return err
	}

	err := s.blockRepository.DeleteByTuple(ctx, service, slotLabel, dateOnly(date))
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return nil
		}
		s.logger.Error("BlockedSlots.Unblock: failed to delete block: %v", err)
		return fmt.Errorf("%w: failed to delete block: %v", ErrInternal, err)
	}

	s.logger.Info("BlockedSlots.Unblock: service=%s, slot=%q, date=%s",
		service, slotLabel, date.Format(domain.DateFormat))
	return nil
}

// List returns the blocks on a date, optionally narrowed to one service
func (s *Service) List(ctx context.Context, service *domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
	day := dateOnly(date)

	var blocks []*domain.BlockedSlot
	var err error
	if service != nil {
		if !service.IsSlotted() {
			return nil, ErrServiceNotSlotted
		}
		blocks, err = s.blockRepository.ListByServiceAndDate(ctx, *service, day)
	} else {
		blocks, err = s.blockRepository.ListByDate(ctx, day)
	}
	if err != nil {
		s.logger.Error("BlockedSlots.List: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	return blocks, nil
}

func (s *Service) validateTuple(service domain.ServiceType, slotLabel string) error {
	if !service.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, service)
	}
	if !service.IsSlotted() {
		return ErrServiceNotSlotted
	}
	if !domain.KnownSlotLabel(service, slotLabel) {
		return ErrUnknownSlot
	}
	return nil
}

func (s *Service) slotHasActiveBookings(ctx context.Context, service domain.ServiceType, slotLabel string, date time.Time) (bool, error) {
	filter := domain.BookingsFilter{
		ServiceType: service,
		StartDate:   &date,
		EndDate:     &date,
	}
	bookings, err := s.bookingRepository.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("BlockedSlots: failed to get bookings: %v", err)
		return false, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		if booking.CountsTowardCapacity() && booking.SlotLabel != nil && *booking.SlotLabel == slotLabel {
			return true, nil
		}
	}
	return false, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
