package end_service_day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	bookingRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/booking"
)

// UseCase sweeps a service's day: every booking that never reached a finished
// status is cancelled in bulk so the next day starts clean. Blocked slots are
// untouched, they expire with the date.
type UseCase struct {
	bookingRepository BookingRepository
	publisher         EventPublisher
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase creates the end-of-day use case
func NewUseCase(bookingRepository BookingRepository, publisher EventPublisher, logger Logger) *UseCase {
	return &UseCase{
		bookingRepository: bookingRepository,
		publisher:         publisher,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute cancels every still-pending booking of the service on the date.
// Each booking is cancelled independently: a failure on one does not stop
// the sweep, the ids that failed come back in the response.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if !req.ServiceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	date := req.Date
	if date.IsZero() {
		now := uc.timeProvider.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	uc.logger.Info("EndServiceDay: service=%s, date=%s", req.ServiceType, date.Format(domain.DateFormat))

	// 2. Fetch the day's live bookings
	filter := domain.BookingsFilter{
		ServiceType: req.ServiceType,
		StartDate:   &date,
		EndDate:     &date,
	}
	bookings, err := uc.bookingRepository.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("EndServiceDay: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Cancel everything that has not finished
	resp := &Response{
		ServiceType: req.ServiceType,
		Date:        date,
		FailedIDs:   []int64{},
	}

	for _, booking := range bookings {
		if !booking.IsStillPending() {
			continue
		}
		resp.Requested++

		err := uc.bookingRepository.Cancel(ctx, booking.ID, domain.EndOfDayCancellationReason)
		if err != nil {
			// A concurrent cancel already got this one; count it swept
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				resp.Cancelled++
				continue
			}
			uc.logger.Error("EndServiceDay: failed to cancel booking id=%d: %v", booking.ID, err)
			resp.FailedIDs = append(resp.FailedIDs, booking.ID)
			continue
		}
		resp.Cancelled++
	}

	uc.logger.Info("EndServiceDay: service=%s, requested=%d, cancelled=%d, failed=%d",
		req.ServiceType, resp.Requested, resp.Cancelled, len(resp.FailedIDs))

	// 4. Announce the day end
	event := events.Event{
		Type:        events.TypeServiceDayEnded,
		ServiceType: req.ServiceType,
		Date:        date.Format(domain.DateFormat),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("EndServiceDay: failed to publish day-ended event: %v", err)
	}

	return resp, nil
}
