package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxBagNumberLength          = 20
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxRepairTypes              = 10
	MaxDonorNameLength          = 120
)

// Cancellation reasons stamped when the caller gives none
const (
	// DefaultCancellationReason is used for an individual cancel without
	// a stated reason.
	DefaultCancellationReason = "cancelled by staff"

	// EndOfDayCancellationReason is stamped on bookings swept by the
	// end-of-service-day bulk cancel.
	EndOfDayCancellationReason = "end of service day"
)

// MilestoneThresholds are the cumulative service counts that trigger a
// one-time celebration per service type. Ascending, fixed.
var MilestoneThresholds = []int64{100, 250, 500, 1000, 2500, 5000, 10000}

// IsMilestoneThreshold reports whether v is one of the fixed thresholds
func IsMilestoneThreshold(v int64) bool {
	for _, t := range MilestoneThresholds {
		if t == v {
			return true
		}
	}
	return false
}
