package donation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/pkg/dbmetrics"
	"github.com/hopes-corner/HC-OpsService/pkg/psqlbuilder"
)

var donationColumns = []string{
	"id",
	"donor_name",
	"category",
	"quantity",
	"unit",
	"note",
	"donation_date",
	"created_at",
	"updated_at",
}

// Repository Postgres repository for donation records
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a donation repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a donation and fills in its generated fields
func (r *Repository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("donations").
		Columns(
			"donor_name",
			"category",
			"quantity",
			"unit",
			"note",
			"donation_date",
		).
		Values(
			donation.DonorName,
			donation.Category,
			donation.Quantity,
			donation.Unit,
			donation.Note,
			donation.Date,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&donation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	donation.CreatedAt = createdAt.Time
	donation.UpdatedAt = updatedAt.Time

	return donation, nil
}

// GetByID fetches one donation by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(donationColumns...).
		From("donations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var donation domain.Donation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&donation.ID,
		&donation.DonorName,
		&donation.Category,
		&donation.Quantity,
		&donation.Unit,
		&donation.Note,
		&donation.Date,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDonationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan donation: %v", ErrScanRow, err)
	}

	donation.CreatedAt = createdAt.Time
	donation.UpdatedAt = updatedAt.Time

	return &donation, nil
}

// List fetches donations matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.DonationsFilter) ([]*domain.Donation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(donationColumns...).
		From("donations").
		OrderBy("donation_date DESC, created_at DESC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"donation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"donation_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	donations := make([]*domain.Donation, 0)
	for rows.Next() {
		var donation domain.Donation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&donation.ID,
			&donation.DonorName,
			&donation.Category,
			&donation.Quantity,
			&donation.Unit,
			&donation.Note,
			&donation.Date,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan donation row: %v", ErrScanRow, err)
		}

		donation.CreatedAt = createdAt.Time
		donation.UpdatedAt = updatedAt.Time
		donations = append(donations, &donation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return donations, nil
}

// Delete removes a donation record permanently
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("donations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}
