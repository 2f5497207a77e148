package share

import "errors"

var (
	ErrInvalidIndex       = errors.New("share: invalid index")
	ErrDuplicateIndex     = errors.New("share: duplicate index")
	ErrInvalidThreshold   = errors.New("share: invalid threshold")
	ErrInsufficientShares = errors.New("share: fewer shares than the threshold")
	ErrInvalidEnvelope    = errors.New("share: invalid envelope")
)
