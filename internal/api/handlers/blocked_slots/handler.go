package blocked_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/api/middleware"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/service/blockedslots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgServiceNotSlotted  = "service has no slots"
	msgUnknownSlot        = "unknown slot label"
	msgSlotHasBookings    = "slot has active bookings, pass force to block anyway"
)

var validate = validator.New()

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleBlock POST /api/v1/blocked-slots
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("POST /blocked-slots - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, ok := h.parseDate(w, req.Date)
	if !ok {
		return
	}

	params := blockedslots.BlockParams{
		ServiceType: domain.ServiceType(req.ServiceType),
		SlotLabel:   req.SlotLabel,
		Date:        date,
		Reason:      req.Reason,
		Force:       req.Force,
	}
	if staffID, ok := middleware.StaffIDFromContext(r.Context()); ok {
		params.CreatedBy = &staffID
	}

	block, err := h.service.Block(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrServiceNotSlotted):
			h.logger.Warn("POST /blocked-slots - Service not slotted: %s", req.ServiceType)
			handlers.RespondBadRequest(w, msgServiceNotSlotted)

		case errors.Is(err, blockedslots.ErrUnknownSlot):
			h.logger.Warn("POST /blocked-slots - Unknown slot %q for service=%s", req.SlotLabel, req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, blockedslots.ErrSlotHasBookings):
			h.logger.Warn("POST /blocked-slots - Slot %q has active bookings", req.SlotLabel)
			handlers.RespondConflict(w, msgSlotHasBookings)

		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("POST /blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /blocked-slots - Failed to block slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-slots - Blocked service=%s, slot=%q, date=%s",
		req.ServiceType, req.SlotLabel, block.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(block))
}

// HandleUnblock DELETE /api/v1/blocked-slots
//
// Unblocking a slot that is not blocked succeeds, so the front desk can
// retry safely.
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	var req UnblockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("DELETE /blocked-slots - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, ok := h.parseDate(w, req.Date)
	if !ok {
		return
	}

	err := h.service.Unblock(r.Context(), domain.ServiceType(req.ServiceType), req.SlotLabel, date)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrServiceNotSlotted):
			handlers.RespondBadRequest(w, msgServiceNotSlotted)

		case errors.Is(err, blockedslots.ErrUnknownSlot):
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, blockedslots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /blocked-slots - Failed to unblock slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-slots - Unblocked service=%s, slot=%q", req.ServiceType, req.SlotLabel)
	w.WriteHeader(http.StatusNoContent)
}

// HandleList GET /api/v1/blocked-slots?date=YYYY-MM-DD&serviceType=shower
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, ok := h.parseDate(w, query.Get("date"))
	if !ok {
		return
	}

	var service *domain.ServiceType
	if raw := query.Get("serviceType"); raw != "" {
		s := domain.ServiceType(raw)
		service = &s
	}

	blocks, err := h.service.List(r.Context(), service, date)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrServiceNotSlotted):
			handlers.RespondBadRequest(w, msgServiceNotSlotted)

		case errors.Is(err, blockedslots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /blocked-slots - Failed to list blocks: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	out := make([]BlockedSlotResponse, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, FromDomain(block))
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Date:         date.Format(domain.DateFormat),
		BlockedSlots: out,
	})
}

func (h *Handler) parseDate(w http.ResponseWriter, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Now(), true
	}
	parsed, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("blocked-slots - Invalid date %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return time.Time{}, false
	}
	return parsed, true
}
