package booking

import (
	"context"
	"database/sql"

	"github.com/hopes-corner/HC-OpsService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works against
// *sql.DB, the metrics wrapper, or an active transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
