package export

import "errors"

var (
	// ErrUnknownEntity is returned on an export request for an entity the
	// exporter does not know
	ErrUnknownEntity = errors.New("export: unknown entity")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("export: invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("export: internal error")
)
