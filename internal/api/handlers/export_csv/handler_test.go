package export_csv

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

type fakeExportService struct {
	exportBookingsFunc  func(ctx context.Context, w io.Writer, service domain.ServiceType, start, end time.Time) error
	exportDonationsFunc func(ctx context.Context, w io.Writer, start, end time.Time) error
}

func (f *fakeExportService) ExportBookings(ctx context.Context, w io.Writer, service domain.ServiceType, start, end time.Time) error {
	if f.exportBookingsFunc != nil {
		return f.exportBookingsFunc(ctx, w, service, start, end)
	}
	return nil
}

func (f *fakeExportService) ExportDonations(ctx context.Context, w io.Writer, start, end time.Time) error {
	if f.exportDonationsFunc != nil {
		return f.exportDonationsFunc(ctx, w, start, end)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func exportRequest(t *testing.T, entity, query string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/"+entity+".csv"+query, nil)
	return mux.SetURLVars(req, map[string]string{"entity": entity})
}

func TestHandle_WritesCSV(t *testing.T) {
	svc := &fakeExportService{
		exportBookingsFunc: func(ctx context.Context, w io.Writer, service domain.ServiceType, start, end time.Time) error {
			_, err := w.Write([]byte("id,guest_id\n1,7\n"))
			return err
		},
	}
	handler := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, exportRequest(t, "bookings", "?serviceType=shower&from=2026-08-01&to=2026-08-29"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=bookings_2026-08-01_2026-08-29.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,guest_id\n1,7\n", rec.Body.String())
}

func TestHandle_FailureMidExportIsNotTruncatedOutput(t *testing.T) {
	// The service dies after producing rows; none of them may leak into a 200
	svc := &fakeExportService{
		exportBookingsFunc: func(ctx context.Context, w io.Writer, service domain.ServiceType, start, end time.Time) error {
			if _, err := w.Write([]byte("id,guest_id\n1,7\n")); err != nil {
				return err
			}
			return errors.New("connection reset")
		},
	}
	handler := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, exportRequest(t, "bookings", "?serviceType=shower"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "guest_id")
}

func TestHandle_UnknownEntity(t *testing.T) {
	handler := NewHandler(&fakeExportService{}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, exportRequest(t, "guests", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BookingsNeedServiceType(t *testing.T) {
	handler := NewHandler(&fakeExportService{}, nopLogger{})

	rec := httptest.NewRecorder()
	handler.Handle(rec, exportRequest(t, "bookings", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
