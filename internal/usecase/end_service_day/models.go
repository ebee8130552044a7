package end_service_day

import (
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// Request end-of-day sweep input
type Request struct {
	ServiceType domain.ServiceType
	Date        time.Time // date only; zero means today
}

// Response sweep outcome counts plus the ids that could not be cancelled
type Response struct {
	ServiceType domain.ServiceType
	Date        time.Time
	Requested   int
	Cancelled   int
	FailedIDs   []int64
}
