package donation

import "errors"

var (
	// ErrDonationNotFound is returned when no donation matches the query
	ErrDonationNotFound = errors.New("donation.repository: donation not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("donation.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("donation.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("donation.repository: failed to scan row")
)
