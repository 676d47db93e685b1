package core

import "errors"

// Validation errors shared by the generators and time-domain operators.
// Callers match them with errors.Is; returned errors wrap them with the
// offending values.
var (
	// ErrInvalidSampleRate indicates a sampling rate that is not > 0.
	ErrInvalidSampleRate = errors.New("wavexform: invalid sample rate")
	// ErrInvalidTimeRange indicates an end time that is not after the start time.
	ErrInvalidTimeRange = errors.New("wavexform: invalid time range")
	// ErrLengthMismatch indicates paired time and amplitude sequences of different length.
	ErrLengthMismatch = errors.New("wavexform: length mismatch")
	// ErrInvalidScaleFactor indicates a time-scale factor of zero.
	ErrInvalidScaleFactor = errors.New("wavexform: invalid scale factor")
)
