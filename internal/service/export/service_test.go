package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakeDonationRepo struct {
	donations []*domain.Donation
}

func (f *fakeDonationRepo) List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error) {
	return f.donations, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
}

func TestExportBookings(t *testing.T) {
	createdAt := time.Date(2026, 8, 29, 9, 15, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID: 1, GuestID: 7, ServiceType: domain.ServiceShower, Date: testDate(),
			SlotLabel: ptr.Ptr("09:00 - 09:30"), Status: domain.StatusDone, CreatedAt: createdAt,
		},
		{
			ID: 2, GuestID: 8, ServiceType: domain.ServiceShower, Date: testDate(),
			SlotLabel: ptr.Ptr("09:30 - 10:00"), Status: domain.StatusCancelled,
			CancellationReason: ptr.Ptr("guest left"), CreatedAt: createdAt,
		},
	}}
	svc := NewService(repo, &fakeDonationRepo{}, nopLogger{})

	var buf bytes.Buffer
	err := svc.ExportBookings(context.Background(), &buf, domain.ServiceShower, testDate(), testDate())
	require.NoError(t, err)

	// Cancelled rows belong in the report
	assert.True(t, repo.lastFilter.IncludeInactive)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(bookingHeader, ","), lines[0])
	assert.Equal(t, "1,7,shower,2026-08-29,09:00 - 09:30,done,,,,,,2026-08-29T09:15:00Z", lines[1])
	assert.Equal(t, "2,8,shower,2026-08-29,09:30 - 10:00,cancelled,,,,,guest left,2026-08-29T09:15:00Z", lines[2])
}

func TestExportBookings_QuotesSpecialCharacters(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID: 1, GuestID: 7, ServiceType: domain.ServiceBicycle, Date: testDate(),
			Status:      domain.StatusPending,
			RepairTypes: []string{"brakes", "chain"},
			Notes:       ptr.Ptr(`flat, rim says "26in"` + "\nneeds tube"),
			CreatedAt:   time.Date(2026, 8, 29, 9, 15, 0, 0, time.UTC),
		},
	}}
	svc := NewService(repo, &fakeDonationRepo{}, nopLogger{})

	var buf bytes.Buffer
	err := svc.ExportBookings(context.Background(), &buf, domain.ServiceBicycle, testDate(), testDate())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"flat, rim says ""26in""`+"\nneeds tube\"")
	assert.Contains(t, out, "brakes;chain")
}

func TestExportBookings_RejectsBadInput(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeDonationRepo{}, nopLogger{})
	var buf bytes.Buffer

	err := svc.ExportBookings(context.Background(), &buf, domain.ServiceType("sauna"), testDate(), testDate())
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.ExportBookings(context.Background(), &buf, domain.ServiceShower, testDate(), testDate().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, buf.Len())
}

func TestExportDonations(t *testing.T) {
	repo := &fakeDonationRepo{donations: []*domain.Donation{
		{
			ID: 1, DonorName: "Trader Joe's", Category: domain.DonationFood,
			Quantity: 12.5, Unit: "lbs", Date: testDate(),
		},
		{
			ID: 2, DonorName: "Anonymous", Category: domain.DonationClothing,
			Quantity: 3, Unit: "items", Note: ptr.Ptr("winter coats"), Date: testDate(),
		},
	}}
	svc := NewService(&fakeBookingRepo{}, repo, nopLogger{})

	var buf bytes.Buffer
	err := svc.ExportDonations(context.Background(), &buf, testDate(), testDate())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(donationHeader, ","), lines[0])
	assert.Equal(t, "1,Trader Joe's,food,12.5,lbs,,2026-08-29", lines[1])
	assert.Equal(t, "2,Anonymous,clothing,3,items,winter coats,2026-08-29", lines[2])
}

func TestKnownEntity(t *testing.T) {
	assert.True(t, KnownEntity(EntityBookings))
	assert.True(t, KnownEntity(EntityDonations))
	assert.False(t, KnownEntity("guests"))
}
