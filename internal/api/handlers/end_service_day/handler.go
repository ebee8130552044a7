package end_service_day

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	endServiceDay "github.com/hopes-corner/HC-OpsService/internal/usecase/end_service_day"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidService     = "unknown service type"
)

type Handler struct {
	useCase EndServiceDayUseCase
	logger  Logger
}

func NewHandler(useCase EndServiceDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceType}/end-day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])

	// Body is optional: an empty body sweeps today
	var req EndServiceDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /services/%s/end-day - Invalid request body: %v", serviceType, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			h.logger.Warn("POST /services/%s/end-day - Invalid date %q", serviceType, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &endServiceDay.Request{
		ServiceType: serviceType,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, endServiceDay.ErrInvalidInput):
			h.logger.Warn("POST /services/%s/end-day - Invalid input: %v", serviceType, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /services/%s/end-day - Failed to end day: %v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/%s/end-day - Swept %d of %d bookings",
		serviceType, result.Cancelled, result.Requested)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
