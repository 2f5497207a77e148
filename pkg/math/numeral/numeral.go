// Package numeral converts between digit strings in an arbitrary radix and
// arbitrary-precision integers.
package numeral

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/taurusgroup/share-recovery/internal/params"
)

var (
	ErrInvalidDigit = errors.New("numeral: invalid digit")
	ErrInvalidBase  = errors.New("numeral: invalid base")
	ErrNegative     = errors.New("numeral: cannot encode a nil or negative integer")
)

// InvalidDigitError reports the first digit of a numeral that is not valid in its base.
// Position counts runes from 0. An empty numeral is reported with Position -1.
type InvalidDigitError struct {
	Digit    rune
	Position int
	Base     int
}

func (e *InvalidDigitError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("numeral: empty numeral in base %d", e.Base)
	}
	return fmt.Sprintf("numeral: digit %q at position %d out of range for base %d", e.Digit, e.Position, e.Base)
}

// Is makes errors.Is(err, ErrInvalidDigit) hold for every InvalidDigitError.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// digitValue maps 0-9 to 0-9 and a-z (either case) to 10-35.
// Any other rune yields -1.
func digitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

// Decode interprets digits as a big-endian numeral in the given base.
//
// Letters are case-insensitive. The first digit whose value is not below base
// aborts decoding with an *InvalidDigitError, as does an empty string.
func Decode(base int, digits string) (*big.Int, error) {
	if base < params.MinBase {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	if digits == "" {
		return nil, &InvalidDigitError{Position: -1, Base: base}
	}

	var bigBase, d big.Int
	bigBase.SetInt64(int64(base))
	x := new(big.Int)
	position := 0
	for _, r := range digits {
		v := digitValue(r)
		if v < 0 || v >= base {
			return nil, &InvalidDigitError{Digit: r, Position: position, Base: base}
		}
		position++
		// x = x⋅base + v
		d.SetInt64(int64(v))
		x.Mul(x, &bigBase)
		x.Add(x, &d)
	}
	return x, nil
}

// Encode writes the non-negative integer x as a lowercase numeral in the given base,
// without leading zeros.
func Encode(x *big.Int, base int) (string, error) {
	if base < params.MinBase || base > params.MaxAlphanumericBase {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidBase, base, params.MinBase, params.MaxAlphanumericBase)
	}
	if x == nil {
		return "", ErrNegative
	}
	if x.Sign() < 0 {
		return "", fmt.Errorf("%w: %s", ErrNegative, x)
	}
	// big.Int already emits lowercase digits for bases up to 36.
	return x.Text(base), nil
}

// ParseBase reads the base of a share, given either as a decimal string or as a number.
func ParseBase(v interface{}) (int, error) {
	var base int
	switch t := v.(type) {
	case string:
		b, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBase, t)
		}
		base = b
	case int:
		base = t
	case int64:
		if t > math.MaxInt32 || t < math.MinInt32 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidBase, t)
		}
		base = int(t)
	case uint64:
		if t > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidBase, t)
		}
		base = int(t)
	case float64:
		if t != math.Trunc(t) || t > math.MaxInt32 || t < math.MinInt32 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidBase, t)
		}
		base = int(t)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidBase, v)
	}
	if base < params.MinBase {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return base, nil
}
