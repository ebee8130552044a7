package donations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	donationSvc "github.com/hopes-corner/HC-OpsService/internal/service/donations"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDonationID  = "invalid donation id"
	msgDonationNotFound   = "donation not found"
)

var validate = validator.New()

type Handler struct {
	service DonationService
	logger  Logger
}

func NewHandler(service DonationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/donations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateDonationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /donations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("POST /donations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	donation, err := h.service.Create(r.Context(), donationSvc.CreateParams{
		DonorName: req.DonorName,
		Category:  domain.DonationCategory(req.Category),
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Note:      req.Note,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, donationSvc.ErrInvalidInput):
			h.logger.Warn("POST /donations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /donations - Failed to create donation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /donations - Donation logged: id=%d, donor=%q", donation.ID, donation.DonorName)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(donation))
}

// HandleList GET /api/v1/donations?category=food&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter domain.DonationsFilter
	if raw := query.Get("category"); raw != "" {
		category := domain.DonationCategory(raw)
		filter.Category = &category
	}
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = &parsed
	}

	donations, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, donationSvc.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /donations - Failed to list donations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	out := make([]DonationResponse, 0, len(donations))
	for _, donation := range donations {
		out = append(out, FromDomain(donation))
	}
	handlers.RespondJSON(w, http.StatusOK, ListResponse{Donations: out})
}

// HandleDelete DELETE /api/v1/donations/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDonationID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, donationSvc.ErrDonationNotFound):
			h.logger.Warn("DELETE /donations/%d - Donation not found", id)
			handlers.RespondNotFound(w, msgDonationNotFound)

		case errors.Is(err, donationSvc.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /donations/%d - Failed to delete donation: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /donations/%d - Donation deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
