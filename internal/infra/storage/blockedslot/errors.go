package blockedslot

import "errors"

var (
	// ErrBlockNotFound is returned when no blocked slot matches the tuple
	ErrBlockNotFound = errors.New("blockedslot.repository: blocked slot not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("blockedslot.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("blockedslot.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("blockedslot.repository: failed to scan row")
)
