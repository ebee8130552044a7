package end_service_day

import (
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	endServiceDay "github.com/hopes-corner/HC-OpsService/internal/usecase/end_service_day"
)

// EndServiceDayRequest HTTP request model
type EndServiceDayRequest struct {
	Date string `json:"date,omitempty"` // "2026-08-29", empty means today
}

// EndServiceDayResponse HTTP response model
type EndServiceDayResponse struct {
	ServiceType string  `json:"serviceType"`
	Date        string  `json:"date"`
	Requested   int     `json:"requested"`
	Cancelled   int     `json:"cancelled"`
	FailedIDs   []int64 `json:"failedIds"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *endServiceDay.Response) *EndServiceDayResponse {
	return &EndServiceDayResponse{
		ServiceType: string(resp.ServiceType),
		Date:        resp.Date.Format(domain.DateFormat),
		Requested:   resp.Requested,
		Cancelled:   resp.Cancelled,
		FailedIDs:   resp.FailedIDs,
	}
}
