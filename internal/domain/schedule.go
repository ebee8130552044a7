package domain

import (
	"fmt"

	"github.com/hopes-corner/HC-OpsService/pkg/types"
)

// ServiceSchedule is the fixed daily slot grid of a slotted service
type ServiceSchedule struct {
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	SlotMinutes  int
	SlotCapacity int
}

// Static schedule table. Slots are recomputed from it on every request and
// never persisted; labels are the join key for bookings and blocks.
var serviceSchedules = map[ServiceType]ServiceSchedule{
	ServiceShower: {
		OpenTime:     "09:00",
		CloseTime:    "12:00",
		SlotMinutes:  30,
		SlotCapacity: 2,
	},
	ServiceLaundry: {
		OpenTime:     "09:00",
		CloseTime:    "14:00",
		SlotMinutes:  60,
		SlotCapacity: 1,
	},
}

// ScheduleFor returns the slot schedule of a slotted service
func ScheduleFor(service ServiceType) (ServiceSchedule, bool) {
	s, ok := serviceSchedules[service]
	return s, ok
}

// SlotLabel formats the canonical slot label, e.g. "09:00 - 09:30".
// Bookings and blocked slots match slots by exact label equality.
func SlotLabel(start, end types.TimeString) string {
	return fmt.Sprintf("%s - %s", start, end)
}

// GenerateSlotLabels produces the ordered list of valid slot labels for a
// service. Pure function of the static schedule table: idempotent and stable
// across calls. Queue-based services yield an empty list.
func GenerateSlotLabels(service ServiceType) []string {
	schedule, ok := ScheduleFor(service)
	if !ok {
		return nil
	}

	labels := make([]string, 0)
	current := schedule.OpenTime

	for current.IsBefore(schedule.CloseTime) {
		end, err := current.AddMinutes(schedule.SlotMinutes)
		if err != nil {
			break
		}
		if end.IsAfter(schedule.CloseTime) {
			break
		}
		labels = append(labels, SlotLabel(current, end))
		current = end
	}

	return labels
}

// KnownSlotLabel reports whether label is one of the service's generated slots
func KnownSlotLabel(service ServiceType, label string) bool {
	for _, l := range GenerateSlotLabels(service) {
		if l == label {
			return true
		}
	}
	return false
}
