package share

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Index is the x-coordinate of a share, stored as a canonical base 10 string:
// an optional '-' followed by digits without leading zeros.
//
// Indices should be created with ParseIndex or IndexFromInt.
type Index string

// ParseIndex reads a base 10 integer and returns its canonical Index.
// "007" and "7" yield the same Index.
func ParseIndex(s string) (Index, error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return IndexFromInt(x), nil
}

// IndexFromInt returns the Index of x.
func IndexFromInt(x *big.Int) Index {
	return Index(x.String())
}

// big returns the x-coordinate as a new big.Int.
// An Index that is not in canonical form fails with ErrInvalidIndex.
func (i Index) big() (*big.Int, error) {
	x, ok := new(big.Int).SetString(string(i), 10)
	if !ok || IndexFromInt(x) != i {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIndex, string(i))
	}
	return x, nil
}

// Cmp compares two indices numerically and returns -1, 0 or +1.
//
// Since both are canonical, this only compares signs, lengths and digits.
func (i Index) Cmp(j Index) int {
	iNeg, jNeg := strings.HasPrefix(string(i), "-"), strings.HasPrefix(string(j), "-")
	switch {
	case iNeg && !jNeg:
		return -1
	case !iNeg && jNeg:
		return 1
	}
	c := cmpMagnitude(strings.TrimPrefix(string(i), "-"), strings.TrimPrefix(string(j), "-"))
	if iNeg {
		return -c
	}
	return c
}

func cmpMagnitude(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// String returns the base 10 representation of the Index.
func (i Index) String() string {
	return string(i)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (i Index) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(i))
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain, and separates this type within hash.Hash.
func (Index) Domain() string {
	return "Index"
}

// IndexSlice is a list of indices, as held by a Set.
type IndexSlice []Index

// Sorted returns true if indices is sorted in strictly increasing order.
func (indices IndexSlice) Sorted() bool {
	for i := range indices {
		if i > 0 && indices[i-1].Cmp(indices[i]) >= 0 {
			return false
		}
	}
	return true
}
