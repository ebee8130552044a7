package get_service_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/service/bookings"
)

const (
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequest = "invalid request"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceType}/bookings?date=YYYY-MM-DD&status=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])
	query := r.URL.Query()

	date := time.Now()
	if raw := query.Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /services/%s/bookings - Invalid date %q", serviceType, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	params := bookings.ListParams{
		ServiceType:     serviceType,
		Date:            date,
		IncludeInactive: query.Get("includeInactive") == "true",
	}
	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		params.Status = &status
	}

	items, err := h.service.List(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /services/%s/bookings - Invalid input: %v", serviceType, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /services/%s/bookings - Failed to list bookings: %v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(serviceType, date, items))
}
