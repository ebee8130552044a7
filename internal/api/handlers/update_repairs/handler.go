package update_repairs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgBookingCancelled   = "booking is cancelled"
	msgNotBicycle         = "checklist updates only apply to bicycle repairs"
	msgUnknownRepair      = "completed repair not on the checklist"
)

var validate = validator.New()

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

// Handle PUT /api/v1/bookings/{id}/repairs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateRepairsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d/repairs - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("PUT /bookings/%d/repairs - Validation failed: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateChecklist(r.Context(), id, req.CompletedRepairs)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d/repairs - Booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrBookingCancelled):
			h.logger.Warn("PUT /bookings/%d/repairs - Booking is cancelled", id)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, bookings.ErrNotBicycle):
			h.logger.Warn("PUT /bookings/%d/repairs - Not a bicycle booking", id)
			handlers.RespondBadRequest(w, msgNotBicycle)

		case errors.Is(err, bookings.ErrUnknownRepair):
			h.logger.Warn("PUT /bookings/%d/repairs - Unknown repair: %v", id, err)
			handlers.RespondBadRequest(w, msgUnknownRepair)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/%d/repairs - Failed to update checklist: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d/repairs - Checklist updated, status=%s", id, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
