package export_csv

import (
	"context"
	"io"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

type ExportService interface {
	ExportBookings(ctx context.Context, w io.Writer, service domain.ServiceType, start, end time.Time) error
	ExportDonations(ctx context.Context, w io.Writer, start, end time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
