package share

import (
	"fmt"

	"github.com/taurusgroup/share-recovery/pkg/math/numeral"
	"github.com/taurusgroup/share-recovery/pkg/math/polynomial"
)

// Share is one encoded point of the secret polynomial: its y-coordinate is
// the numeral Value written in Base.
type Share struct {
	Index Index
	Base  int
	Value string
}

// Point decodes the share.
func (s Share) Point() (polynomial.Point, error) {
	x, err := s.Index.big()
	if err != nil {
		return polynomial.Point{}, err
	}
	y, err := numeral.Decode(s.Base, s.Value)
	if err != nil {
		return polynomial.Point{}, fmt.Errorf("share %s: %w", s.Index, err)
	}
	return polynomial.Point{X: x, Y: y}, nil
}
