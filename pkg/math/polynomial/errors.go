package polynomial

import "errors"

var (
	ErrInvalidThreshold   = errors.New("polynomial: threshold must be at least 1")
	ErrInsufficientPoints = errors.New("polynomial: fewer points than the threshold")
	ErrDuplicateX         = errors.New("polynomial: duplicate x-coordinate")
	ErrNonIntegerDivision = errors.New("polynomial: non-integer division in interpolation")
	ErrNegativeResult     = errors.New("polynomial: interpolated secret is negative")
)
