package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	"github.com/hopes-corner/HC-OpsService/internal/integrations/guestroster"
	"github.com/hopes-corner/HC-OpsService/pkg/ptr"
)

type fakeBookingRepo struct {
	created           []*domain.Booking
	getWithFilterFunc func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	createFunc        func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, booking)
	}
	booking.ID = int64(len(f.created) + 1)
	f.created = append(f.created, booking)
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.getWithFilterFunc != nil {
		return f.getWithFilterFunc(ctx, filter)
	}
	return []*domain.Booking{}, nil
}

type fakeBlockRepo struct {
	blocks []*domain.BlockedSlot
}

func (f *fakeBlockRepo) ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

type fakeRosterClient struct {
	guest *guestroster.Guest
	err   error
}

func (f *fakeRosterClient) GetGuest(ctx context.Context, guestID int64) (*guestroster.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.guest, nil
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
}

func okGuest() *guestroster.Guest {
	return &guestroster.Guest{ID: 7, Name: "Sam"}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, blockRepo *fakeBlockRepo, roster *fakeRosterClient, publisher *fakePublisher) *UseCase {
	return NewUseCase(bookingRepo, blockRepo, roster, publisher, fakeTxManager{}, nopLogger{})
}

func TestExecute_BooksRequestedSlot(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	publisher := &fakePublisher{}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, publisher)

	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		SlotLabel:   ptr.Ptr("09:30 - 10:00"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.SlotLabel)
	assert.Equal(t, "09:30 - 10:00", *resp.SlotLabel)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeBookingCreated, publisher.published[0].Type)
}

func TestExecute_NextAvailableSkipsFullAndBlocked(t *testing.T) {
	existing := []*domain.Booking{
		{GuestID: 1, ServiceType: domain.ServiceShower, Date: testDate(), SlotLabel: ptr.Ptr("09:00 - 09:30"), Status: domain.StatusBooked},
		{GuestID: 2, ServiceType: domain.ServiceShower, Date: testDate(), SlotLabel: ptr.Ptr("09:00 - 09:30"), Status: domain.StatusBooked},
	}
	bookingRepo := &fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return existing, nil
		},
	}
	blockRepo := &fakeBlockRepo{blocks: []*domain.BlockedSlot{
		{ServiceType: domain.ServiceShower, SlotLabel: "09:30 - 10:00", Date: testDate()},
	}}
	uc := newTestUseCase(bookingRepo, blockRepo, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.SlotLabel)
	assert.Equal(t, "10:00 - 10:30", *resp.SlotLabel)
}

func TestExecute_SlotFull(t *testing.T) {
	existing := []*domain.Booking{
		{GuestID: 1, ServiceType: domain.ServiceLaundry, Date: testDate(), SlotLabel: ptr.Ptr("09:00 - 10:00"), Status: domain.StatusWaiting},
	}
	bookingRepo := &fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return existing, nil
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceLaundry,
		Date:        testDate(),
		SlotLabel:   ptr.Ptr("09:00 - 10:00"),
	})

	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_SlotBlocked(t *testing.T) {
	blockRepo := &fakeBlockRepo{blocks: []*domain.BlockedSlot{
		{ServiceType: domain.ServiceShower, SlotLabel: "09:00 - 09:30", Date: testDate()},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blockRepo, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		SlotLabel:   ptr.Ptr("09:00 - 09:30"),
	})

	assert.ErrorIs(t, err, ErrSlotBlocked)
}

func TestExecute_UnknownSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		SlotLabel:   ptr.Ptr("09:00 - 10:00"), // laundry-shaped label
	})

	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestExecute_FullyBooked(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			bookings := make([]*domain.Booking, 0)
			for _, label := range domain.GenerateSlotLabels(domain.ServiceShower) {
				for i := 0; i < 2; i++ {
					bookings = append(bookings, &domain.Booking{
						GuestID:     int64(i + 1),
						ServiceType: domain.ServiceShower,
						Date:        testDate(),
						SlotLabel:   ptr.Ptr(label),
						Status:      domain.StatusBooked,
					})
				}
			}
			return bookings, nil
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	assert.ErrorIs(t, err, ErrFullyBooked)
}

func TestExecute_WaitlistSkipsCapacityCheck(t *testing.T) {
	// Day is fully booked, waitlist entry still goes through
	bookingRepo := &fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			t.Fatal("waitlist path must not resolve availability")
			return nil, nil
		},
	}
	publisher := &fakePublisher{}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, publisher)

	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		Waitlist:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusWaitlisted), resp.Status)
	assert.Nil(t, resp.SlotLabel)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeBookingWaitlisted, publisher.published[0].Type)
}

func TestExecute_WaitlistOnlyForShowers(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceLaundry,
		Date:        testDate(),
		Waitlist:    true,
	})

	assert.ErrorIs(t, err, ErrWaitlistNotSupported)
}

func TestExecute_QueueBasedServiceNeedsNoSlot(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, &fakeRosterClient{guest: okGuest()}, &fakePublisher{})

	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceBicycle,
		Date:        testDate(),
		RepairTypes: []string{"brakes", "chain"},
	})

	require.NoError(t, err)
	assert.Nil(t, resp.SlotLabel)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, []string{"brakes", "chain"}, resp.RepairTypes)
}

func TestExecute_GuestNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeRosterClient{err: guestroster.ErrGuestNotFound}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     404,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestExecute_RosterOutageDoesNotStopIntake(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	publisher := &fakePublisher{}
	roster := &fakeRosterClient{err: errors.New("connection refused")}
	uc := newTestUseCase(bookingRepo, &fakeBlockRepo{}, roster, publisher)

	resp, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		SlotLabel:   ptr.Ptr("09:00 - 09:30"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	require.Len(t, publisher.published, 1)
}

func TestExecute_BannedGuest(t *testing.T) {
	banned := &guestroster.Guest{ID: 7, Name: "Sam", ServiceBans: []string{"shower"}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeRosterClient{guest: banned}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		GuestID:     7,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	assert.ErrorIs(t, err, ErrGuestBanned)
}
