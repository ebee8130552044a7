package milestones

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	milestoneSvc "github.com/hopes-corner/HC-OpsService/internal/service/milestones"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCount       = "count must be a non-negative integer"
	msgInvalidService     = "unknown service type"
	msgNotAThreshold      = "not a milestone threshold"
)

var validate = validator.New()

type Handler struct {
	service MilestoneService
	logger  Logger
}

func NewHandler(service MilestoneService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCheck GET /api/v1/milestones/{serviceType}/check?count=N
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])

	count, err := strconv.ParseInt(r.URL.Query().Get("count"), 10, 64)
	if err != nil || count < 0 {
		handlers.RespondBadRequest(w, msgInvalidCount)
		return
	}

	threshold, celebrate, err := h.service.ShouldCelebrate(r.Context(), serviceType, count)
	if err != nil {
		switch {
		case errors.Is(err, milestoneSvc.ErrInvalidInput):
			h.logger.Warn("GET /milestones/%s/check - Invalid input: %v", serviceType, err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("GET /milestones/%s/check - Failed to check milestone: %v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckResponse{
		ServiceType: string(serviceType),
		Count:       count,
		Celebrate:   celebrate,
		Threshold:   threshold,
	})
}

// HandleMarkCelebrated POST /api/v1/milestones/{serviceType}/celebrated
func (h *Handler) HandleMarkCelebrated(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])

	var req MarkCelebratedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /milestones/%s/celebrated - Invalid request body: %v", serviceType, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validate.Struct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.MarkCelebrated(r.Context(), serviceType, req.Threshold); err != nil {
		switch {
		case errors.Is(err, milestoneSvc.ErrNotAThreshold):
			h.logger.Warn("POST /milestones/%s/celebrated - Not a threshold: %d", serviceType, req.Threshold)
			handlers.RespondBadRequest(w, msgNotAThreshold)

		case errors.Is(err, milestoneSvc.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /milestones/%s/celebrated - Failed to mark celebrated: %v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /milestones/%s/celebrated - Marked threshold=%d", serviceType, req.Threshold)
	w.WriteHeader(http.StatusNoContent)
}

// HandleListCelebrated GET /api/v1/milestones/{serviceType}/celebrated
func (h *Handler) HandleListCelebrated(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])

	thresholds, err := h.service.ListCelebrated(r.Context(), serviceType)
	if err != nil {
		switch {
		case errors.Is(err, milestoneSvc.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("GET /milestones/%s/celebrated - Failed to list celebrated: %v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i] < thresholds[j] })

	handlers.RespondJSON(w, http.StatusOK, CelebratedResponse{
		ServiceType: string(serviceType),
		Thresholds:  thresholds,
	})
}
