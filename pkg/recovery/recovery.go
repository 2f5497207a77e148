// Package recovery reconstructs secrets from share records.
//
// Recover handles a single record and never logs. Batch runs many independent
// records concurrently, for use by command line tools.
package recovery

import (
	"fmt"

	"github.com/taurusgroup/share-recovery/pkg/math/polynomial"
	"github.com/taurusgroup/share-recovery/pkg/share"
)

type options struct {
	verify bool
}

// Option configures Recover.
type Option func(*options)

// WithVerify makes Recover check that every share beyond the first K lies on the
// interpolated polynomial.
func WithVerify() Option {
	return func(o *options) {
		o.verify = true
	}
}

// Recover decodes every share of set and interpolates the first set.K of them at 0.
//
// Shares are taken in ascending index order. Any failure aborts the whole record:
// no partial or approximate secret is ever returned.
func Recover(set *share.Set, opts ...Option) (*Secret, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}
	points, err := set.Points()
	if err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}
	value, err := polynomial.InterpolateAtZero(points, set.K)
	if err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}
	if o.verify {
		if err = verify(set, points); err != nil {
			return nil, fmt.Errorf("recovery: %w", err)
		}
	}

	fingerprint, err := set.Fingerprint(set.K)
	if err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}
	return &Secret{
		value:       value,
		Fingerprint: fingerprint,
		Threshold:   set.K,
	}, nil
}

// verify evaluates the polynomial through points[:k] at the x-coordinate of each remaining point.
func verify(set *share.Set, points []polynomial.Point) error {
	var inconsistent share.IndexSlice
	for i := set.K; i < len(points); i++ {
		y, err := polynomial.InterpolateAt(points, set.K, points[i].X)
		if err != nil {
			return err
		}
		if y.Cmp(points[i].Y) != 0 {
			inconsistent = append(inconsistent, set.Shares[i].Index)
		}
	}
	if len(inconsistent) > 0 {
		return &InconsistentError{Indices: inconsistent}
	}
	return nil
}
