package create_booking

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	createBooking "github.com/hopes-corner/HC-OpsService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgGuestNotFound        = "guest not found"
	msgGuestBanned          = "guest is banned from this service"
	msgUnknownSlot          = "unknown slot label"
	msgSlotBlocked          = "slot is blocked"
	msgSlotFull             = "slot is full"
	msgFullyBooked          = "no slots available"
	msgWaitlistNotSupported = "service has no waitlist"
)

var validate = validator.New()

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, false)
}

// HandleWaitlist POST /api/v1/bookings/waitlist
func (h *Handler) HandleWaitlist(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, waitlist bool) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(waitlist)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrGuestBanned):
			h.logger.Warn("POST /bookings - Guest banned: guest_id=%d, service=%s", req.GuestID, req.ServiceType)
			handlers.RespondForbidden(w, msgGuestBanned)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings - Unknown slot: guest_id=%d, service=%s", req.GuestID, req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings - Slot blocked: guest_id=%d, service=%s", req.GuestID, req.ServiceType)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: guest_id=%d, service=%s", req.GuestID, req.ServiceType)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrFullyBooked):
			h.logger.Warn("POST /bookings - Fully booked: guest_id=%d, service=%s", req.GuestID, req.ServiceType)
			handlers.RespondConflict(w, msgFullyBooked)

		case errors.Is(err, createBooking.ErrWaitlistNotSupported):
			h.logger.Warn("POST /bookings - Waitlist not supported: guest_id=%d, service=%s", req.GuestID, req.ServiceType)
			handlers.RespondBadRequest(w, msgWaitlistNotSupported)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%d, error=%v", req.GuestID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, service=%s, error=%v",
				req.GuestID, req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, guest_id=%d, service=%s, status=%s",
		result.ID, req.GuestID, req.ServiceType, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
