package domain

import "time"

// BlockedSlot marks a (service, slot label, date) tuple as unavailable for
// new bookings. It is an advisory lock on new demand only: existing bookings
// in the slot are never touched by creating or removing a block.
type BlockedSlot struct {
	ID          int64
	ServiceType ServiceType
	SlotLabel   string
	Date        time.Time // date only
	Reason      *string
	CreatedBy   *int64 // staff id
	CreatedAt   time.Time
}
