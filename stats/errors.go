package stats

import "errors"

var (
	// ErrEmptyInput indicates a statistic was requested over zero observations.
	ErrEmptyInput = errors.New("stats: input series must be non-empty")
	// ErrInsufficientData indicates fewer observations than the statistic needs
	// (e.g. a sample standard deviation over a single value).
	ErrInsufficientData = errors.New("stats: not enough observations for the requested statistic")
	// ErrInvalidArgument indicates a malformed argument such as a non-positive
	// sample size or a defect count exceeding the sample size.
	ErrInvalidArgument = errors.New("stats: invalid argument")
)
