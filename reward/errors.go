package reward

import "errors"

var (
	ErrInvalidBounds        = errors.New("reward: lower bound must be <= upper bound")
	ErrInvalidMargin        = errors.New("reward: margin must be non-negative")
	ErrInvalidValueAtMargin = errors.New("reward: value_at_margin out of range")
	ErrUnknownSigmoid       = errors.New("reward: unknown sigmoid")
)
