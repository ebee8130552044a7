package blockedslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	blockRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/blockedslot"
	"github.com/hopes-corner/HC-OpsService/pkg/ptr"
)

type fakeBlockRepo struct {
	blocks    []*domain.BlockedSlot
	created   []*domain.BlockedSlot
	deleteErr error
	deleted   int
}

func (f *fakeBlockRepo) Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	block.ID = int64(len(f.created) + 1)
	f.created = append(f.created, block)
	return block, nil
}

func (f *fakeBlockRepo) DeleteByTuple(ctx context.Context, service domain.ServiceType, slotLabel string, date time.Time) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted++
	return nil
}

func (f *fakeBlockRepo) ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

func (f *fakeBlockRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
}

func TestBlock_EmptySlot(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	block, err := svc.Block(context.Background(), BlockParams{
		ServiceType: domain.ServiceShower,
		SlotLabel:   "09:00 - 09:30",
		Date:        testDate(),
		Reason:      ptr.Ptr("plumbing repair"),
		CreatedBy:   ptr.Ptr(int64(3)),
	})

	require.NoError(t, err)
	assert.Equal(t, "09:00 - 09:30", block.SlotLabel)
	require.Len(t, repo.created, 1)
}

func TestBlock_OccupiedSlotNeedsForce(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{GuestID: 1, ServiceType: domain.ServiceShower, Date: testDate(),
			SlotLabel: ptr.Ptr("09:00 - 09:30"), Status: domain.StatusBooked},
	}}
	repo := &fakeBlockRepo{}
	svc := NewService(repo, bookingRepo, nopLogger{})

	params := BlockParams{
		ServiceType: domain.ServiceShower,
		SlotLabel:   "09:00 - 09:30",
		Date:        testDate(),
	}

	_, err := svc.Block(context.Background(), params)
	assert.ErrorIs(t, err, ErrSlotHasBookings)
	assert.Empty(t, repo.created)

	// Force confirms; the existing booking stays untouched
	params.Force = true
	block, err := svc.Block(context.Background(), params)
	require.NoError(t, err)
	assert.NotNil(t, block)
	require.Len(t, repo.created, 1)
}

func TestBlock_CancelledBookingsDoNotOccupy(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{GuestID: 1, ServiceType: domain.ServiceShower, Date: testDate(),
			SlotLabel: ptr.Ptr("09:00 - 09:30"), Status: domain.StatusCancelled},
	}}
	svc := NewService(&fakeBlockRepo{}, bookingRepo, nopLogger{})

	_, err := svc.Block(context.Background(), BlockParams{
		ServiceType: domain.ServiceShower,
		SlotLabel:   "09:00 - 09:30",
		Date:        testDate(),
	})

	assert.NoError(t, err)
}

func TestBlock_RejectsBadTuples(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.Block(context.Background(), BlockParams{
		ServiceType: domain.ServiceBicycle,
		SlotLabel:   "09:00 - 09:30",
		Date:        testDate(),
	})
	assert.ErrorIs(t, err, ErrServiceNotSlotted)

	_, err = svc.Block(context.Background(), BlockParams{
		ServiceType: domain.ServiceShower,
		SlotLabel:   "12:00 - 12:30", // past closing
		Date:        testDate(),
	})
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestUnblock_MissingBlockIsNoOp(t *testing.T) {
	repo := &fakeBlockRepo{deleteErr: blockRepo.ErrBlockNotFound}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	err := svc.Unblock(context.Background(), domain.ServiceShower, "09:00 - 09:30", testDate())

	assert.NoError(t, err)
}

func TestUnblock(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	err := svc.Unblock(context.Background(), domain.ServiceLaundry, "09:00 - 10:00", testDate())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleted)
}

func TestList(t *testing.T) {
	repo := &fakeBlockRepo{blocks: []*domain.BlockedSlot{
		{ServiceType: domain.ServiceShower, SlotLabel: "09:00 - 09:30", Date: testDate()},
	}}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	blocks, err := svc.List(context.Background(), nil, testDate())
	require.NoError(t, err)
	assert.Len(t, blocks, 1)

	service := domain.ServiceShower
	blocks, err = svc.List(context.Background(), &service, testDate())
	require.NoError(t, err)
	assert.Len(t, blocks, 1)

	queueService := domain.ServiceBicycle
	_, err = svc.List(context.Background(), &queueService, testDate())
	assert.ErrorIs(t, err, ErrServiceNotSlotted)
}
