// Package bookings holds the booking lifecycle service: lookups, per-service
// status workflows, the bicycle repair checklist and idempotent cancellation.
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	bookingRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/booking"
)

// Service booking lifecycle operations
type Service struct {
	repository BookingRepository
	publisher  EventPublisher
	logger     Logger
}

// NewService creates the booking service
func NewService(repository BookingRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		logger:     logger,
	}
}

// GetByID fetches one booking
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// List fetches the bookings of a service on a date, in slot order
func (s *Service) List(ctx context.Context, params ListParams) ([]*domain.Booking, error) {
	if !params.ServiceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, params.ServiceType)
	}
	if params.Status != nil && !domain.ValidStatusForService(params.ServiceType, *params.Status) {
		return nil, fmt.Errorf("%w: status %q not valid for service %q", ErrInvalidInput, *params.Status, params.ServiceType)
	}

	filter := domain.BookingsFilter{
		ServiceType:     params.ServiceType,
		StartDate:       &params.Date,
		EndDate:         &params.Date,
		Status:          params.Status,
		IncludeInactive: params.IncludeInactive,
	}

	bookings, err := s.repository.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Bookings.List: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Transition moves a booking to another status of its service workflow.
//
// Statuses may move in any direction within the workflow (a shower reopens by
// going done -> booked), but cancelled bookings never transition. Laundry
// bookings cannot leave their intake status without a bag number. On a bicycle
// booking a transition counts as a manual override and suspends checklist
// derivation until the next checklist update.
func (s *Service) Transition(ctx context.Context, params TransitionParams) (*domain.Booking, error) {
	booking, err := s.GetByID(ctx, params.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		s.logger.Warn("Bookings.Transition: booking id=%d is cancelled", booking.ID)
		return nil, ErrBookingCancelled
	}

	if !domain.ValidStatusForService(booking.ServiceType, params.Status) {
		s.logger.Warn("Bookings.Transition: status %q not valid for service %q (booking id=%d)",
			params.Status, booking.ServiceType, booking.ID)
		return nil, ErrInvalidStatus
	}

	if params.Override && booking.ServiceType != domain.ServiceBicycle {
		return nil, ErrOverrideNotSupported
	}

	// Laundry leaves intake only with a bag number on record
	if domain.RequiresBagNumberToLeave(booking.ServiceType, booking.Status) &&
		params.Status != booking.Status {
		if params.BagNumber != nil && *params.BagNumber != "" {
			if len(*params.BagNumber) > domain.MaxBagNumberLength {
				return nil, fmt.Errorf("%w: bag number must be 1-%d characters", ErrInvalidInput, domain.MaxBagNumberLength)
			}
			if err := s.repository.SetBagNumber(ctx, booking.ID, *params.BagNumber); err != nil {
				s.logger.Error("Bookings.Transition: failed to set bag number on booking id=%d: %v", booking.ID, err)
				return nil, fmt.Errorf("%w: failed to set bag number: %v", ErrInternal, err)
			}
			booking.BagNumber = params.BagNumber
		} else if booking.BagNumber == nil || *booking.BagNumber == "" {
			s.logger.Warn("Bookings.Transition: booking id=%d has no bag number", booking.ID)
			return nil, ErrBagNumberRequired
		}
	}

	// Any hand-set status on a bicycle booking is an override
	override := booking.ServiceType == domain.ServiceBicycle

	if err := s.repository.UpdateStatus(ctx, booking.ID, params.Status, override); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.Transition: failed to update status on booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	booking.Status = params.Status
	booking.StatusOverride = override

	s.logger.Info("Bookings.Transition: booking id=%d moved to status=%s", booking.ID, booking.Status)
	s.publish(ctx, events.TypeStatusChanged, booking)

	return booking, nil
}

// UpdateChecklist replaces the completed repairs of a bicycle booking and
// re-derives its status from the checklist, clearing any manual override.
func (s *Service) UpdateChecklist(ctx context.Context, bookingID int64, completed []string) (*domain.Booking, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		return nil, ErrBookingCancelled
	}
	if booking.ServiceType != domain.ServiceBicycle {
		return nil, ErrNotBicycle
	}

	declared := make(map[string]bool, len(booking.RepairTypes))
	for _, repair := range booking.RepairTypes {
		declared[repair] = true
	}
	for _, repair := range completed {
		if !declared[repair] {
			s.logger.Warn("Bookings.UpdateChecklist: repair %q not declared on booking id=%d", repair, booking.ID)
			return nil, fmt.Errorf("%w: %q", ErrUnknownRepair, repair)
		}
	}

	status := domain.DeriveBicycleStatus(booking.RepairTypes, completed)

	if err := s.repository.UpdateRepairs(ctx, booking.ID, completed, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Bookings.UpdateChecklist: failed to update repairs on booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update repairs: %v", ErrInternal, err)
	}

	booking.CompletedRepairs = completed
	booking.Status = status
	booking.StatusOverride = false

	s.logger.Info("Bookings.UpdateChecklist: booking id=%d now %d/%d repairs, status=%s",
		booking.ID, len(completed), len(booking.RepairTypes), status)
	s.publish(ctx, events.TypeStatusChanged, booking)

	return booking, nil
}

// Cancel cancels a booking. The reason is optional and defaults to a staff
// cancellation marker. Cancelling an already-cancelled or nonexistent booking
// is a no-op success, so retries and races with the end-of-day sweep stay
// benign.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) error {
	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if reason == "" {
		reason = domain.DefaultCancellationReason
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason longer than %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	err := s.repository.Cancel(ctx, id, reason)
	if err == nil {
		s.logger.Info("Bookings.Cancel: booking id=%d cancelled: %s", id, reason)
		s.publishCancelled(ctx, id)
		return nil
	}

	// Zero rows means the booking is missing or already cancelled; either way
	// the desired end state holds
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Info("Bookings.Cancel: booking id=%d missing or already cancelled", id)
		return nil
	}

	s.logger.Error("Bookings.Cancel: failed to cancel booking id=%d: %v", id, err)
	return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
}

func (s *Service) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	event := events.Event{
		Type:        eventType,
		ServiceType: booking.ServiceType,
		BookingID:   booking.ID,
		GuestID:     booking.GuestID,
		Status:      string(booking.Status),
		Date:        booking.Date.Format(domain.DateFormat),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Bookings: failed to publish %s for booking=%d: %v", eventType, booking.ID, err)
	}
}

func (s *Service) publishCancelled(ctx context.Context, id int64) {
	booking, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Bookings: failed to fetch booking id=%d for cancel event: %v", id, err)
		return
	}
	s.publish(ctx, events.TypeBookingCancelled, booking)
}
