package export_csv

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
	"github.com/hopes-corner/HC-OpsService/internal/domain"
	exportSvc "github.com/hopes-corner/HC-OpsService/internal/service/export"
)

const (
	msgUnknownEntity   = "unknown export entity"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidService  = "unknown service type"
	msgMissingService  = "serviceType query parameter is required for bookings export"
	msgInvalidDateSpan = "invalid date range"
)

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/export/{entity}.csv?from=YYYY-MM-DD&to=YYYY-MM-DD[&serviceType=shower]
//
// The range defaults to the current day. The CSV is assembled in memory and
// written only on success, so a repository failure yields a clean error
// response instead of a truncated file. Day-center export volumes are small
// enough that buffering is not a concern.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entity := mux.Vars(r)["entity"]
	if !exportSvc.KnownEntity(entity) {
		handlers.RespondNotFound(w, msgUnknownEntity)
		return
	}

	query := r.URL.Query()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	start := today
	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		start = parsed
	}

	end := today
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		end = parsed
	}

	filename := fmt.Sprintf("%s_%s_%s.csv", entity, start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	var buf bytes.Buffer
	var err error
	switch entity {
	case exportSvc.EntityBookings:
		raw := query.Get("serviceType")
		if raw == "" {
			handlers.RespondBadRequest(w, msgMissingService)
			return
		}
		service := domain.ServiceType(raw)
		if !service.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidService)
			return
		}
		err = h.service.ExportBookings(r.Context(), &buf, service, start, end)

	case exportSvc.EntityDonations:
		err = h.service.ExportDonations(r.Context(), &buf, start, end)
	}

	if err != nil {
		if errors.Is(err, exportSvc.ErrInvalidInput) {
			h.logger.Warn("GET /export/%s.csv - Invalid input: %v", entity, err)
			handlers.RespondBadRequest(w, msgInvalidDateSpan)
			return
		}
		h.logger.Error("GET /export/%s.csv - Export failed: %v", entity, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /export/%s.csv - Failed to write response: %v", entity, err)
		return
	}

	h.logger.Info("GET /export/%s.csv - Export complete: from=%s, to=%s",
		entity, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
}
