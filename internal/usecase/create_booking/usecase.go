package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	rosterClient "github.com/hopes-corner/HC-OpsService/internal/integrations/guestroster"
)

// UseCase creates a booking (or waitlist entry) for a guest
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockedSlotRepository
	rosterClient GuestRosterClient
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockedSlotRepository,
	rosterClient GuestRosterClient,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		rosterClient: rosterClient,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking command.
//
// For slotted services the availability check and the insert run inside a
// serializable transaction, so two concurrent bookings cannot both take the
// last spot of a slot: the capacity rule is enforced here, not just advised
// to the UI.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, service=%s, slot=%v, waitlist=%t",
		req.GuestID, req.ServiceType, req.SlotLabel, req.Waitlist)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Normalize the booking date (defaults to today, date part only)
	date := normalizeDate(req.Date, uc.timeProvider.Now())

	// 3. Check the guest against the roster. A roster outage must not stop
	// intake: the booking proceeds with the ban check skipped.
	guest, err := uc.rosterClient.GetGuest(ctx, req.GuestID)
	if err != nil {
		if errors.Is(err, rosterClient.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest id=%d not found", req.GuestID)
			return nil, ErrGuestNotFound
		}
		uc.logger.Warn("CreateBooking: roster unavailable for guest id=%d, skipping ban check: %v",
			req.GuestID, err)
	} else if guest.IsBannedFrom(string(req.ServiceType)) {
		uc.logger.Warn("CreateBooking: guest id=%d banned from service=%s", req.GuestID, req.ServiceType)
		return nil, ErrGuestBanned
	}

	// 4. Waitlist entries are capacity-exempt: no slot resolution, no tx
	if req.Waitlist {
		return uc.createWaitlisted(ctx, req, date)
	}

	// 5. Queue-based services have no slot grid either
	if !req.ServiceType.IsSlotted() {
		return uc.createQueued(ctx, req, date)
	}

	return uc.createSlotted(ctx, req, date)
}

func (uc *UseCase) createWaitlisted(ctx context.Context, req *Request, date time.Time) (*Response, error) {
	booking := &domain.Booking{
		GuestID:     req.GuestID,
		ServiceType: req.ServiceType,
		Date:        date,
		Status:      domain.StatusWaitlisted,
		Notes:       req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create waitlist entry: %v", err)
		return nil, fmt.Errorf("%w: failed to create waitlist entry: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: waitlisted booking id=%d for guest=%d", created.ID, created.GuestID)
	uc.publish(ctx, events.TypeBookingWaitlisted, created)

	return fromDomain(created), nil
}

func (uc *UseCase) createQueued(ctx context.Context, req *Request, date time.Time) (*Response, error) {
	booking := &domain.Booking{
		GuestID:     req.GuestID,
		ServiceType: req.ServiceType,
		Date:        date,
		Status:      domain.InitialStatus(req.ServiceType),
		BagNumber:   req.BagNumber,
		RepairTypes: req.RepairTypes,
		Notes:       req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for guest=%d, service=%s",
		created.ID, created.GuestID, created.ServiceType)
	uc.publish(ctx, events.TypeBookingCreated, created)

	return fromDomain(created), nil
}

func (uc *UseCase) createSlotted(ctx context.Context, req *Request, date time.Time) (*Response, error) {
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Fetch day bookings with FOR UPDATE and the admin block set
		filter := domain.BookingsFilter{
			ServiceType: req.ServiceType,
			StartDate:   &date,
			EndDate:     &date,
		}
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.ListByServiceAndDate(txCtx, req.ServiceType, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
		}

		slotLabel, err := uc.resolveSlot(req, bookings, blocks)
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			GuestID:     req.GuestID,
			ServiceType: req.ServiceType,
			Date:        date,
			SlotLabel:   &slotLabel,
			Status:      domain.InitialStatus(req.ServiceType),
			BagNumber:   req.BagNumber,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for guest=%d, service=%s, slot=%s",
		result.ID, result.GuestID, result.ServiceType, *result.SlotLabel)
	uc.publish(ctx, events.TypeBookingCreated, result)

	return fromDomain(result), nil
}

// resolveSlot validates an explicit slot label or picks the next available
// one in generator order.
func (uc *UseCase) resolveSlot(req *Request, bookings []*domain.Booking, blocks []*domain.BlockedSlot) (string, error) {
	schedule, ok := domain.ScheduleFor(req.ServiceType)
	if !ok {
		return "", fmt.Errorf("%w: no schedule for service %q", ErrInternal, req.ServiceType)
	}

	labels := domain.GenerateSlotLabels(req.ServiceType)
	blocked := blockedSet(blocks)

	if req.SlotLabel != nil {
		label := *req.SlotLabel
		if !domain.KnownSlotLabel(req.ServiceType, label) {
			uc.logger.Warn("CreateBooking: unknown slot label %q for service=%s", label, req.ServiceType)
			return "", ErrUnknownSlot
		}
		// Full wins over blocked: a full slot reports full even when blocked
		if countSlotOccupancy(label, bookings) >= schedule.SlotCapacity {
			uc.logger.Warn("CreateBooking: slot %q full for service=%s", label, req.ServiceType)
			return "", ErrSlotFull
		}
		if blocked[label] {
			uc.logger.Warn("CreateBooking: slot %q blocked for service=%s", label, req.ServiceType)
			return "", ErrSlotBlocked
		}
		return label, nil
	}

	// Next-available selection for the simplified front-desk flow
	for _, label := range labels {
		if blocked[label] {
			continue
		}
		if countSlotOccupancy(label, bookings) < schedule.SlotCapacity {
			return label, nil
		}
	}

	uc.logger.Warn("CreateBooking: no slots available for service=%s", req.ServiceType)
	return "", ErrFullyBooked
}

func (uc *UseCase) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	event := events.Event{
		Type:        eventType,
		ServiceType: booking.ServiceType,
		BookingID:   booking.ID,
		GuestID:     booking.GuestID,
		Status:      string(booking.Status),
		Date:        booking.Date.Format(domain.DateFormat),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		// Event delivery is best-effort; the booking itself already committed
		uc.logger.Error("CreateBooking: failed to publish %s for booking=%d: %v", eventType, booking.ID, err)
	}
}

func normalizeDate(date, now time.Time) time.Time {
	if date.IsZero() {
		date = now
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
