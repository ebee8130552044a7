package transition_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/internal/service/bookings"
)

const (
	msgInvalidBookingID     = "invalid booking id"
	msgInvalidRequestBody   = "invalid request body"
	msgBookingNotFound      = "booking not found"
	msgBookingCancelled     = "booking is cancelled"
	msgInvalidStatus        = "status not valid for this service"
	msgBagNumberRequired    = "bag number required to leave intake"
	msgOverrideNotSupported = "status override only applies to bicycle repairs"
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

// Handle PATCH /api/v1/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - Validation failed: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Transition(r.Context(), bookings.TransitionParams{
		BookingID: id,
		Status:    domain.BookingStatus(req.Status),
		BagNumber: req.BagNumber,
		Override:  req.Override,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/status - Booking not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrBookingCancelled):
			h.logger.Warn("PATCH /bookings/%d/status - Booking is cancelled", id)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/%d/status - Invalid status %q", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBagNumberRequired):
			h.logger.Warn("PATCH /bookings/%d/status - Bag number required", id)
			handlers.RespondConflict(w, msgBagNumberRequired)

		case errors.Is(err, bookings.ErrOverrideNotSupported):
			h.logger.Warn("PATCH /bookings/%d/status - Override not supported", id)
			handlers.RespondBadRequest(w, msgOverrideNotSupported)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d/status - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/%d/status - Failed to transition: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/status - Booking moved to status=%s", id, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
