// Package events publishes booking lifecycle events to Kafka. Subscribers
// (analytics, notification jobs) consume them instead of polling the store.
package events

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// Event types
const (
	TypeBookingCreated    = "booking.created"
	TypeBookingWaitlisted = "booking.waitlisted"
	TypeBookingCancelled  = "booking.cancelled"
	TypeStatusChanged     = "booking.status_changed"
	TypeServiceDayEnded   = "service_day.ended"
)

// Event is one booking lifecycle event on the wire
type Event struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	ServiceType domain.ServiceType `json:"serviceType"`
	BookingID   int64              `json:"bookingId,omitempty"`
	GuestID     int64              `json:"guestId,omitempty"`
	Status      string             `json:"status,omitempty"`
	Date        string             `json:"date"` // YYYY-MM-DD
	OccurredAt  time.Time          `json:"occurredAt"`
}
