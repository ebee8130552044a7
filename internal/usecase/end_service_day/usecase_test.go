package end_service_day

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/events"
	bookingRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	cancelled  []int64
	cancelFunc func(ctx context.Context, id int64, reason string) error
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if f.cancelFunc != nil {
		if err := f.cancelFunc(ctx, id, reason); err != nil {
			return err
		}
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		GuestID:     id,
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
		Status:      status,
	}
}

func TestExecute_SweepsOnlyStillPending(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, domain.StatusBooked),
		booking(2, domain.StatusWaitlisted),
		booking(3, domain.StatusDone),      // finished, kept
		booking(4, domain.StatusCancelled), // already cancelled, kept
		booking(5, domain.StatusAwaiting),
	}}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Requested)
	assert.Equal(t, 3, resp.Cancelled)
	assert.Empty(t, resp.FailedIDs)
	assert.Equal(t, []int64{1, 2, 5}, repo.cancelled)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeServiceDayEnded, publisher.published[0].Type)
}

func TestExecute_RaceWithIndividualCancelIsBenign(t *testing.T) {
	// Booking 2 gets cancelled by staff between fetch and sweep
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			booking(1, domain.StatusBooked),
			booking(2, domain.StatusBooked),
		},
		cancelFunc: func(ctx context.Context, id int64, reason string) error {
			if id == 2 {
				return bookingRepo.ErrBookingNotFound
			}
			return nil
		},
	}
	uc := NewUseCase(repo, &fakePublisher{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, 2, resp.Cancelled)
	assert.Empty(t, resp.FailedIDs)
}

func TestExecute_FailuresDoNotStopTheSweep(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			booking(1, domain.StatusBooked),
			booking(2, domain.StatusBooked),
			booking(3, domain.StatusBooked),
		},
		cancelFunc: func(ctx context.Context, id int64, reason string) error {
			if id == 2 {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	uc := NewUseCase(repo, &fakePublisher{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceShower,
		Date:        testDate(),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Requested)
	assert.Equal(t, 2, resp.Cancelled)
	assert.Equal(t, []int64{2}, resp.FailedIDs)
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakePublisher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceType("sauna"),
		Date:        testDate(),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
