package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/hopes-corner/HC-OpsService/internal/domain"
	"github.com/hopes-corner/HC-OpsService/pkg/dbmetrics"
	"github.com/hopes-corner/HC-OpsService/pkg/psqlbuilder"
)

var blockedSlotColumns = []string{
	"id",
	"service_type",
	"slot_label",
	"block_date",
	"reason",
	"created_by",
	"created_at",
}

// Repository Postgres repository for blocked slots.
// A blocked slot has no lifecycle beyond create and delete.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a blocked-slot repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a blocked slot. The (service, slot, date) tuple is unique;
// a duplicate insert is resolved via ON CONFLICT DO NOTHING so blocking an
// already-blocked slot stays a no-op.
func (r *Repository) Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"service_type",
			"slot_label",
			"block_date",
			"reason",
			"created_by",
		).
		Values(
			block.ServiceType,
			block.SlotLabel,
			block.Date,
			block.Reason,
			block.CreatedBy,
		).
		Suffix("ON CONFLICT (service_type, slot_label, block_date) DO NOTHING RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err == sql.ErrNoRows {
		// Conflict path: the tuple is already blocked, nothing to do
		return block, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// DeleteByTuple removes the block for the (service, slot, date) tuple.
// Affecting zero rows returns ErrBlockNotFound; callers that need an
// idempotent unblock treat that as success.
func (r *Repository) DeleteByTuple(ctx context.Context, service domain.ServiceType, slotLabel string, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{
			"service_type": service,
			"slot_label":   slotLabel,
			"block_date":   date,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByTuple - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByTuple - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByTuple - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

// ListByServiceAndDate returns all blocks for a service on a date
func (r *Repository) ListByServiceAndDate(ctx context.Context, service domain.ServiceType, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{
			"service_type": service,
			"block_date":   date,
		}).
		OrderBy("slot_label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByServiceAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedSlots(rows)
}

// ListByDate returns all blocks on a date across services
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"block_date": date}).
		OrderBy("service_type ASC, slot_label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedSlots(rows)
}

func scanBlockedSlots(rows *sql.Rows) ([]*domain.BlockedSlot, error) {
	blocks := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		var block domain.BlockedSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.ServiceType,
			&block.SlotLabel,
			&block.Date,
			&block.Reason,
			&block.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan blocked slot row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
