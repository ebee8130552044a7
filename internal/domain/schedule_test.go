package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotLabels_Shower(t *testing.T) {
	labels := GenerateSlotLabels(ServiceShower)

	require.Len(t, labels, 6)
	assert.Equal(t, []string{
		"09:00 - 09:30",
		"09:30 - 10:00",
		"10:00 - 10:30",
		"10:30 - 11:00",
		"11:00 - 11:30",
		"11:30 - 12:00",
	}, labels)
}

func TestGenerateSlotLabels_Laundry(t *testing.T) {
	labels := GenerateSlotLabels(ServiceLaundry)

	require.Len(t, labels, 5)
	assert.Equal(t, "09:00 - 10:00", labels[0])
	assert.Equal(t, "13:00 - 14:00", labels[4])
}

func TestGenerateSlotLabels_Stable(t *testing.T) {
	first := GenerateSlotLabels(ServiceShower)
	second := GenerateSlotLabels(ServiceShower)

	assert.Equal(t, first, second)
}

func TestGenerateSlotLabels_QueueBasedServicesHaveNoSlots(t *testing.T) {
	assert.Empty(t, GenerateSlotLabels(ServiceBicycle))
	assert.Empty(t, GenerateSlotLabels(ServiceLaundryOffsite))
}

func TestScheduleFor_Capacities(t *testing.T) {
	shower, ok := ScheduleFor(ServiceShower)
	require.True(t, ok)
	assert.Equal(t, 2, shower.SlotCapacity)

	laundry, ok := ScheduleFor(ServiceLaundry)
	require.True(t, ok)
	assert.Equal(t, 1, laundry.SlotCapacity)
}

func TestKnownSlotLabel(t *testing.T) {
	assert.True(t, KnownSlotLabel(ServiceShower, "09:00 - 09:30"))
	assert.False(t, KnownSlotLabel(ServiceShower, "09:00 - 10:00"))
	assert.False(t, KnownSlotLabel(ServiceShower, "9:00 - 9:30"))
	assert.True(t, KnownSlotLabel(ServiceLaundry, "09:00 - 10:00"))
	assert.False(t, KnownSlotLabel(ServiceBicycle, "09:00 - 09:30"))
}
