package donations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	donationRepo "github.com/hopes-corner/HC-OpsService/internal/infra/storage/donation"
	"github.com/hopes-corner/HC-OpsService/pkg/ptr"
)

type fakeRepo struct {
	created   []*domain.Donation
	donations []*domain.Donation
	deleteErr error
	deleted   []int64
}

func (f *fakeRepo) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	donation.ID = int64(len(f.created) + 1)
	f.created = append(f.created, donation)
	return donation, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	return nil, donationRepo.ErrDonationNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error) {
	return f.donations, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	donation, err := svc.Create(context.Background(), CreateParams{
		DonorName: "Trader Joe's",
		Category:  domain.DonationFood,
		Quantity:  12.5,
		Unit:      "lbs",
		Note:      ptr.Ptr("bread and produce"),
		Date:      time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), donation.ID)
	// Time of day is dropped, only the date is kept
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), donation.Date)
}

func TestCreate_ZeroDateDefaultsToToday(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	donation, err := svc.Create(context.Background(), CreateParams{
		DonorName: "Anonymous",
		Category:  domain.DonationClothing,
		Quantity:  3,
		Unit:      "items",
	})

	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), donation.Date)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	tests := []struct {
		name   string
		params CreateParams
	}{
		{name: "empty donor", params: CreateParams{Category: domain.DonationFood, Quantity: 1, Unit: "lbs"}},
		{name: "unknown category", params: CreateParams{DonorName: "A", Category: "vehicles", Quantity: 1, Unit: "items"}},
		{name: "zero quantity", params: CreateParams{DonorName: "A", Category: domain.DonationFood, Quantity: 0, Unit: "lbs"}},
		{name: "negative quantity", params: CreateParams{DonorName: "A", Category: domain.DonationFood, Quantity: -2, Unit: "lbs"}},
		{name: "missing unit", params: CreateParams{DonorName: "A", Category: domain.DonationFood, Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_RejectsUnknownCategory(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	category := domain.DonationCategory("vehicles")
	_, err := svc.List(context.Background(), domain.DonationsFilter{Category: &category})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDelete_MissingIsAnError(t *testing.T) {
	repo := &fakeRepo{deleteErr: donationRepo.ErrDonationNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrDonationNotFound)
}
