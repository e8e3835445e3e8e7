package autopay

import "errors"

var (
	// ErrUnknownFrequency is returned when a frequency name is not recognised.
	ErrUnknownFrequency = errors.New("unknown payment frequency")
)
