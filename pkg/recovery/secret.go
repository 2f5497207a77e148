package recovery

import (
	"math/big"

	"github.com/taurusgroup/share-recovery/pkg/math/numeral"
)

// Secret is a recovered secret: the constant term of the polynomial interpolated
// from the first K shares of a record.
type Secret struct {
	value *big.Int
	// Fingerprint identifies the shares the secret was recovered from.
	Fingerprint string
	// Threshold is the number of shares that were interpolated.
	Threshold int
}

// Int returns a copy of the secret.
func (s *Secret) Int() *big.Int {
	return new(big.Int).Set(s.value)
}

// String renders the secret in base 10.
func (s *Secret) String() string {
	return s.value.String()
}

// Text renders the secret in the given base, between 2 and 36.
func (s *Secret) Text(base int) (string, error) {
	return numeral.Encode(s.value, base)
}

// Equal reports whether both secrets have the same value.
func (s *Secret) Equal(other *Secret) bool {
	return s.value.Cmp(other.value) == 0
}
