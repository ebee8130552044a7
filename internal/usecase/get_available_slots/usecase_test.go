package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/pkg/ptr"
)

type fakeBookingRepo struct {
	getWithFilterFunc func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.getWithFilterFunc != nil {
		return f.getWithFilterFunc(ctx, filter)
	}
	return []*domain.Booking{}, nil
}

type fakeBlockRepo struct {
	listFunc func(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error)
}

func (f *fakeBlockRepo) ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, service, date)
	}
	return []*domain.BlockedSlot{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
}

func showerBooking(label string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		GuestID:     1,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		SlotLabel:   ptr.Ptr(label),
		Status:      status,
	}
}

func TestExecute_EmptyDayAllOpen(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)
	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotOpen, slot.State)
		assert.Equal(t, 0, slot.Occupancy)
		assert.Equal(t, 2, slot.Capacity)
	}
	require.NotNil(t, resp.NextAvailable)
	assert.Equal(t, "09:00 - 09:30", *resp.NextAvailable)
	assert.False(t, resp.FullyBooked)
	assert.False(t, resp.WaitlistOffered)
}

func TestExecute_OccupancyStates(t *testing.T) {
	bookings := []*domain.Booking{
		showerBooking("09:00 - 09:30", domain.StatusBooked),
		showerBooking("09:00 - 09:30", domain.StatusDone),
		showerBooking("09:30 - 10:00", domain.StatusBooked),
		// Capacity-exempt rows must not count
		showerBooking("10:00 - 10:30", domain.StatusCancelled),
		{GuestID: 9, ServiceType: domain.ServiceShower, Date: testDate(), Status: domain.StatusWaitlisted},
	}
	uc := NewUseCase(&fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return bookings, nil
		},
	}, &fakeBlockRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotFull, resp.Slots[0].State)
	assert.Equal(t, 2, resp.Slots[0].Occupancy)
	assert.Equal(t, domain.SlotNearlyFull, resp.Slots[1].State)
	assert.Equal(t, domain.SlotOpen, resp.Slots[2].State)

	require.NotNil(t, resp.NextAvailable)
	assert.Equal(t, "09:30 - 10:00", *resp.NextAvailable)
}

func TestExecute_FullWinsOverBlocked(t *testing.T) {
	bookings := []*domain.Booking{
		showerBooking("09:00 - 09:30", domain.StatusBooked),
		showerBooking("09:00 - 09:30", domain.StatusBooked),
	}
	blocks := []*domain.BlockedSlot{
		{ServiceType: domain.ServiceShower, SlotLabel: "09:00 - 09:30", Date: testDate()},
		{ServiceType: domain.ServiceShower, SlotLabel: "09:30 - 10:00", Date: testDate()},
	}
	uc := NewUseCase(&fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return bookings, nil
		},
	}, &fakeBlockRepo{
		listFunc: func(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
			return blocks, nil
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	// Occupied and blocked reports full; empty and blocked reports blocked
	assert.Equal(t, domain.SlotFull, resp.Slots[0].State)
	assert.True(t, resp.Slots[0].Blocked)
	assert.Equal(t, domain.SlotBlocked, resp.Slots[1].State)

	// Neither is bookable, so next available skips both
	require.NotNil(t, resp.NextAvailable)
	assert.Equal(t, "10:00 - 10:30", *resp.NextAvailable)
}

func TestExecute_FullyBookedOffersWaitlistForShowers(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockRepo{
		listFunc: func(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
			blocks := make([]*domain.BlockedSlot, 0)
			for _, label := range domain.GenerateSlotLabels(domain.ServiceShower) {
				blocks = append(blocks, &domain.BlockedSlot{
					ServiceType: domain.ServiceShower,
					SlotLabel:   label,
					Date:        testDate(),
				})
			}
			return blocks, nil
		},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.NextAvailable)
	assert.True(t, resp.FullyBooked)
	assert.True(t, resp.WaitlistOffered)
}

func TestExecute_LaundryNeverOffersWaitlist(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{
		getWithFilterFunc: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			bookings := make([]*domain.Booking, 0)
			for _, label := range domain.GenerateSlotLabels(domain.ServiceLaundry) {
				bookings = append(bookings, &domain.Booking{
					GuestID:     1,
					ServiceType: domain.ServiceLaundry,
					Date:        testDate(),
					SlotLabel:   ptr.Ptr(label),
					Status:      domain.StatusWaiting,
				})
			}
			return bookings, nil
		},
	}, &fakeBlockRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceLaundry,
		Date:        testDate(),
	})

	require.NoError(t, err)
	assert.True(t, resp.FullyBooked)
	assert.False(t, resp.WaitlistOffered)
}

func TestExecute_QueueBasedServiceRejected(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceBicycle,
		Date:        testDate(),
	})

	assert.ErrorIs(t, err, ErrServiceNotSlotted)
}
