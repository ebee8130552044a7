package get_available_slots

import (
	"context"
	"fmt"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// UseCase resolves per-slot availability for a slotted service on a date
type UseCase struct {
	bookingRepo BookingRepository
	blockRepo   BlockedSlotRepository
	logger      Logger
}

// NewUseCase creates the availability use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockedSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		logger:      logger,
	}
}

// Execute resolves the availability of every slot of the day
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.ServiceType, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	schedule, ok := domain.ScheduleFor(req.ServiceType)
	if !ok {
		return nil, ErrServiceNotSlotted
	}

	// 2. Generate the canonical slot list from the static schedule
	labels := domain.GenerateSlotLabels(req.ServiceType)

	// 3. Fetch bookings for the service and date (active only; waitlisted
	// rows come back too and are excluded during counting)
	filter := domain.BookingsFilter{
		ServiceType: req.ServiceType,
		StartDate:   &req.Date,
		EndDate:     &req.Date,
	}
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Fetch admin blocks for the service and date
	blocks, err := uc.blockRepo.ListByServiceAndDate(ctx, req.ServiceType, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// 5. Resolve per-slot state
	slots := resolveAvailability(labels, schedule.SlotCapacity, bookings, blocks)
	next := nextAvailableSlot(slots)

	fullyBooked := next == nil

	uc.logger.Info("GetAvailableSlots: resolved %d slots for service=%s, date=%s, fullyBooked=%t",
		len(slots), req.ServiceType, req.Date.Format(domain.DateFormat), fullyBooked)

	return &Response{
		ServiceType:     req.ServiceType,
		Date:            req.Date,
		Slots:           slots,
		NextAvailable:   next,
		FullyBooked:     fullyBooked,
		WaitlistOffered: fullyBooked && req.ServiceType.SupportsWaitlist(),
	}, nil
}

func validateRequest(req *Request) error {
	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}
	if !req.ServiceType.IsSlotted() {
		return ErrServiceNotSlotted
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
