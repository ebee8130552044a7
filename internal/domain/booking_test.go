package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBicycleStatus(t *testing.T) {
	repairs := []string{"brakes", "chain", "tire"}

	assert.Equal(t, StatusPending, DeriveBicycleStatus(repairs, nil))
	assert.Equal(t, StatusPending, DeriveBicycleStatus(repairs, []string{}))
	assert.Equal(t, StatusInProgress, DeriveBicycleStatus(repairs, []string{"brakes"}))
	assert.Equal(t, StatusInProgress, DeriveBicycleStatus(repairs, []string{"brakes", "chain"}))
	assert.Equal(t, StatusDone, DeriveBicycleStatus(repairs, []string{"brakes", "chain", "tire"}))
}

func TestValidStatusForService(t *testing.T) {
	assert.True(t, ValidStatusForService(ServiceShower, StatusBooked))
	assert.True(t, ValidStatusForService(ServiceShower, StatusDone))
	assert.False(t, ValidStatusForService(ServiceShower, StatusWasher))

	assert.True(t, ValidStatusForService(ServiceLaundry, StatusWasher))
	assert.True(t, ValidStatusForService(ServiceLaundry, StatusPickedUp))
	assert.False(t, ValidStatusForService(ServiceLaundry, StatusTransported))

	assert.True(t, ValidStatusForService(ServiceLaundryOffsite, StatusTransported))
	assert.False(t, ValidStatusForService(ServiceLaundryOffsite, StatusDone))

	assert.True(t, ValidStatusForService(ServiceBicycle, StatusInProgress))
	assert.False(t, ValidStatusForService(ServiceBicycle, StatusWaiting))

	// Cancelled is reachable only through Cancel, not Transition
	assert.False(t, ValidStatusForService(ServiceShower, StatusCancelled))
}

func TestCountsTowardCapacity(t *testing.T) {
	booked := &Booking{Status: StatusBooked}
	waitlisted := &Booking{Status: StatusWaitlisted}
	cancelled := &Booking{Status: StatusCancelled}
	done := &Booking{Status: StatusDone}

	assert.True(t, booked.CountsTowardCapacity())
	assert.True(t, done.CountsTowardCapacity())
	assert.False(t, waitlisted.CountsTowardCapacity())
	assert.False(t, cancelled.CountsTowardCapacity())
}

func TestIsStillPending(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusBooked}).IsStillPending())
	assert.True(t, (&Booking{Status: StatusWasher}).IsStillPending())
	assert.True(t, (&Booking{Status: StatusWaitlisted}).IsStillPending())

	assert.False(t, (&Booking{Status: StatusDone}).IsStillPending())
	assert.False(t, (&Booking{Status: StatusPickedUp}).IsStillPending())
	assert.False(t, (&Booking{Status: StatusOffsitePickedUp}).IsStillPending())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsStillPending())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusBooked, InitialStatus(ServiceShower))
	assert.Equal(t, StatusWaiting, InitialStatus(ServiceLaundry))
	assert.Equal(t, StatusPending, InitialStatus(ServiceLaundryOffsite))
	assert.Equal(t, StatusPending, InitialStatus(ServiceBicycle))
}

func TestRequiresBagNumberToLeave(t *testing.T) {
	assert.True(t, RequiresBagNumberToLeave(ServiceLaundry, StatusWaiting))
	assert.True(t, RequiresBagNumberToLeave(ServiceLaundryOffsite, StatusPending))

	assert.False(t, RequiresBagNumberToLeave(ServiceLaundry, StatusWasher))
	assert.False(t, RequiresBagNumberToLeave(ServiceBicycle, StatusPending))
	assert.False(t, RequiresBagNumberToLeave(ServiceShower, StatusBooked))
}
