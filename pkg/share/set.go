package share

import (
	"fmt"
	"sort"

	"github.com/taurusgroup/share-recovery/internal/hash"
	"github.com/taurusgroup/share-recovery/internal/params"
	"github.com/taurusgroup/share-recovery/pkg/math/polynomial"
)

// Set is one reconstruction record: the declared number of shares N, the threshold K,
// and the shares themselves, sorted by Index.
//
// The sort order is the canonical point order: the first K shares are the ones
// interpolated.
type Set struct {
	N, K   int
	Shares []Share
}

// NewSet returns a Set holding a sorted copy of shares.
func NewSet(n, k int, shares ...Share) *Set {
	s := &Set{
		N:      n,
		K:      k,
		Shares: make([]Share, len(shares)),
	}
	copy(s.Shares, shares)
	s.sort()
	return s
}

func (s *Set) sort() {
	sort.SliceStable(s.Shares, func(i, j int) bool {
		return s.Shares[i].Index.Cmp(s.Shares[j].Index) < 0
	})
}

// Indices returns the sorted indices of all shares.
func (s *Set) Indices() IndexSlice {
	indices := make(IndexSlice, len(s.Shares))
	for i, sh := range s.Shares {
		indices[i] = sh.Index
	}
	return indices
}

// Validate checks the structure of the set, without decoding share values.
func (s *Set) Validate() error {
	if s.K < 1 {
		return fmt.Errorf("%w: k = %d", ErrInvalidThreshold, s.K)
	}
	if len(s.Shares) < s.K {
		return fmt.Errorf("%w: need %d, got %d: %w", ErrInsufficientShares, s.K, len(s.Shares), polynomial.ErrInsufficientPoints)
	}
	for _, sh := range s.Shares {
		if _, err := sh.Index.big(); err != nil {
			return err
		}
		if sh.Base < params.MinBase {
			return fmt.Errorf("share %s: base %d is smaller than %d", sh.Index, sh.Base, params.MinBase)
		}
	}
	if indices := s.Indices(); !indices.Sorted() {
		return orderError(indices)
	}
	return nil
}

// orderError reports the first pair of indices that breaks strictly increasing order.
func orderError(indices IndexSlice) error {
	for i := 1; i < len(indices); i++ {
		switch indices[i-1].Cmp(indices[i]) {
		case 0:
			return fmt.Errorf("%w: %s: %w", ErrDuplicateIndex, indices[i], polynomial.ErrDuplicateX)
		case 1:
			return fmt.Errorf("%w: shares are not sorted: %s before %s", ErrInvalidEnvelope, indices[i-1], indices[i])
		}
	}
	return nil
}

// Points decodes every share, in canonical order.
//
// All shares are decoded, not only the first K, so that a malformed share
// anywhere in the record is reported.
func (s *Set) Points() ([]polynomial.Point, error) {
	points := make([]polynomial.Point, len(s.Shares))
	for i, sh := range s.Shares {
		p, err := sh.Point()
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// Fingerprint returns a hex encoded BLAKE3 digest of the threshold and the first k shares.
//
// Two records interpolating the same encoded shares have the same fingerprint,
// whatever their remaining shares.
func (s *Set) Fingerprint(k int) (string, error) {
	if k < 0 || k > len(s.Shares) {
		return "", fmt.Errorf("%w: cannot fingerprint %d of %d shares", ErrInsufficientShares, k, len(s.Shares))
	}
	h := hash.New("share-recovery/set")
	if err := h.WriteAny(k); err != nil {
		return "", err
	}
	for _, sh := range s.Shares[:k] {
		if err := h.WriteAny(sh.Index, sh.Base, sh.Value); err != nil {
			return "", err
		}
	}
	return h.Hex(), nil
}
