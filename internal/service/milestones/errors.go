package milestones

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("milestones: invalid input data")

	// ErrNotAThreshold is returned when marking a count that is not one of
	// the fixed milestone thresholds
	ErrNotAThreshold = errors.New("milestones: not a milestone threshold")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("milestones: internal error")
)
