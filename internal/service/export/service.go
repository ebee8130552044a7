// Package export streams bookings and donations as CSV for the monthly
// reporting spreadsheets. encoding/csv does the RFC-4180 quoting.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
)

// Export entities
const (
	EntityBookings  = "bookings"
	EntityDonations = "donations"
)

var bookingHeader = []string{
	"id", "guest_id", "service_type", "date", "slot", "status",
	"bag_number", "repair_types", "completed_repairs", "notes",
	"cancellation_reason", "created_at",
}

var donationHeader = []string{
	"id", "donor_name", "category", "quantity", "unit", "note", "date",
}

// Service CSV exporter over the repositories
type Service struct {
	bookingRepository  BookingRepository
	donationRepository DonationRepository
	logger             Logger
}

// NewService creates the export service
func NewService(bookingRepository BookingRepository, donationRepository DonationRepository, logger Logger) *Service {
	return &Service{
		bookingRepository:  bookingRepository,
		donationRepository: donationRepository,
		logger:             logger,
	}
}

// KnownEntity reports whether entity has an exporter
func KnownEntity(entity string) bool {
	return entity == EntityBookings || entity == EntityDonations
}

// ExportBookings writes the bookings of a service in the date range as CSV,
// cancelled rows included so reports see the full day.
func (s *Service) ExportBookings(ctx context.Context, w io.Writer, service domain.ServiceType, start, end time.Time) error {
	if !service.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, service)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		ServiceType:     service,
		StartDate:       &start,
		EndDate:         &end,
		IncludeInactive: true,
	}
	bookings, err := s.bookingRepository.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Export.ExportBookings: failed to get bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(bookingHeader); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			strconv.FormatInt(b.GuestID, 10),
			string(b.ServiceType),
			b.Date.Format(domain.DateFormat),
			deref(b.SlotLabel),
			string(b.Status),
			deref(b.BagNumber),
			strings.Join(b.RepairTypes, ";"),
			strings.Join(b.CompletedRepairs, ";"),
			deref(b.Notes),
			deref(b.CancellationReason),
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: write booking row: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrInternal, err)
	}

	s.logger.Info("Export.ExportBookings: service=%s, rows=%d", service, len(bookings))
	return nil
}

// ExportDonations writes the donations in the date range as CSV
func (s *Service) ExportDonations(ctx context.Context, w io.Writer, start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	filter := domain.DonationsFilter{
		StartDate: &start,
		EndDate:   &end,
	}
	donations, err := s.donationRepository.List(ctx, filter)
	if err != nil {
		s.logger.Error("Export.ExportDonations: failed to list donations: %v", err)
		return fmt.Errorf("%w: failed to list donations: %v", ErrInternal, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(donationHeader); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrInternal, err)
	}

	for _, d := range donations {
		record := []string{
			strconv.FormatInt(d.ID, 10),
			d.DonorName,
			string(d.Category),
			strconv.FormatFloat(d.Quantity, 'f', -1, 64),
			d.Unit,
			deref(d.Note),
			d.Date.Format(domain.DateFormat),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: write donation row: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrInternal, err)
	}

	s.logger.Info("Export.ExportDonations: rows=%d", len(donations))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
