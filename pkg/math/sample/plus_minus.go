package sample

import (
	"io"

	"github.com/cronokirby/saferith"
)

// IntervalBits returns an integer in the range ± 2ᵇⁱᵗˢ, but with constant-time properties.
func IntervalBits(rand io.Reader, bits int) *saferith.Int {
	sign := make([]byte, 1)
	mustReadBits(rand, sign)
	neg := saferith.Choice(sign[0] & 1)
	out := new(saferith.Int).SetBytes(readMagnitude(rand, bits))
	out.Neg(neg)
	return out
}
