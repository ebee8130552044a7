package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	getAvailableSlots "github.com/hopes-corner/HC-OpsService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate       = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotSlotted = "service has no slot schedule"
	msgInvalidService    = "unknown service type"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceType}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /services/%s/slots - Invalid date %q", serviceType, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceType: serviceType,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotSlotted):
			h.logger.Warn("GET /services/%s/slots - Service not slotted", serviceType)
			handlers.RespondBadRequest(w, msgServiceNotSlotted)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/%s/slots - Invalid input: %v", serviceType, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("GET /services/%s/slots - Failed to resolve availability: %v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
