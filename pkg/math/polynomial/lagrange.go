package polynomial

import (
	"fmt"
	"math/big"
)

// Point is a sample (x, f(x)) of an integer polynomial f.
type Point struct {
	X, Y *big.Int
}

// selectPoints returns the first k points, after checking that there are enough of them
// and that their x-coordinates are pairwise distinct.
func selectPoints(points []Point, k int) ([]Point, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k = %d", ErrInvalidThreshold, k)
	}
	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientPoints, k, len(points))
	}
	selected := points[:k]
	for j := range selected {
		if selected[j].X == nil || selected[j].Y == nil {
			return nil, fmt.Errorf("polynomial: point %d has a nil coordinate", j)
		}
		for m := 0; m < j; m++ {
			if selected[m].X.Cmp(selected[j].X) == 0 {
				return nil, fmt.Errorf("%w: points %d and %d both have x = %s", ErrDuplicateX, m, j, selected[j].X)
			}
		}
	}
	return selected, nil
}

// InterpolateAtZero returns f(0), where f is the polynomial of degree k-1 passing through
// the first k points, in the order given.
//
// Each Lagrange term must divide exactly:
//
//	        ∏ₘ≠ⱼ (-xₘ)
//	yⱼ ⋅ -------------   ∈ ℤ
//	      ∏ₘ≠ⱼ (xⱼ - xₘ)
//
// otherwise ErrNonIntegerDivision is returned. A negative f(0) is rejected with ErrNegativeResult,
// since recovered secrets are non-negative.
func InterpolateAtZero(points []Point, k int) (*big.Int, error) {
	selected, err := selectPoints(points, k)
	if err != nil {
		return nil, err
	}

	var (
		numerator, denominator, term, tmp, rem big.Int
		result                                 = new(big.Int)
	)
	for j, pJ := range selected {
		numerator.SetInt64(1)
		denominator.SetInt64(1)
		for m, pM := range selected {
			if m == j {
				continue
			}
			// numerator *= -xₘ
			tmp.Neg(pM.X)
			numerator.Mul(&numerator, &tmp)
			// denominator *= xⱼ - xₘ
			tmp.Sub(pJ.X, pM.X)
			denominator.Mul(&denominator, &tmp)
		}

		term.Mul(pJ.Y, &numerator)
		// QuoRem truncates, so the remainder is zero exactly when the division is exact,
		// whatever the signs.
		term.QuoRem(&term, &denominator, &rem)
		if rem.Sign() != 0 {
			return nil, fmt.Errorf("%w: term %d (x = %s)", ErrNonIntegerDivision, j, pJ.X)
		}
		result.Add(result, &term)
	}

	if result.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeResult, result)
	}
	return result, nil
}

// InterpolateAt returns f(x), where f is the polynomial of degree k-1 passing through
// the first k points.
//
// Unlike InterpolateAtZero, individual terms may be fractional: they are summed as one
// exact rational, and only a non-integer total is reported as ErrNonIntegerDivision.
func InterpolateAt(points []Point, k int, x *big.Int) (*big.Int, error) {
	selected, err := selectPoints(points, k)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, fmt.Errorf("polynomial: nil evaluation point")
	}
	for _, p := range selected {
		if p.X.Cmp(x) == 0 {
			return new(big.Int).Set(p.Y), nil
		}
	}

	var (
		numerator, denominator, tmp big.Int
		term                        big.Rat
		sum                         = new(big.Rat)
	)
	for j, pJ := range selected {
		numerator.Set(pJ.Y)
		denominator.SetInt64(1)
		for m, pM := range selected {
			if m == j {
				continue
			}
			// numerator *= x - xₘ
			tmp.Sub(x, pM.X)
			numerator.Mul(&numerator, &tmp)
			// denominator *= xⱼ - xₘ
			tmp.Sub(pJ.X, pM.X)
			denominator.Mul(&denominator, &tmp)
		}
		term.SetFrac(&numerator, &denominator)
		sum.Add(sum, &term)
	}

	if !sum.IsInt() {
		return nil, fmt.Errorf("%w: f(%s) = %s", ErrNonIntegerDivision, x, sum.RatString())
	}
	return new(big.Int).Set(sum.Num()), nil
}
