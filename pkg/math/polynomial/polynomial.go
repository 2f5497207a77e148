package polynomial

import (
	"io"
	"math/big"

	"github.com/taurusgroup/share-recovery/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ, with coefficients in ℤ.
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial generates a Polynomial f(X) = constant + a₁⋅X + … + aₜ⋅Xᵗ,
// with aᵢ sampled uniformly in ± 2ᵇⁱᵗˢ, and degree t.
func NewPolynomial(rand io.Reader, degree int, constant *big.Int, bits int) *Polynomial {
	var polynomial Polynomial
	polynomial.coefficients = make([]*big.Int, degree+1)

	// if the constant is nil, we interpret it as 0.
	if constant == nil {
		constant = new(big.Int)
	}
	polynomial.coefficients[0] = new(big.Int).Set(constant)

	for i := 1; i <= degree; i++ {
		polynomial.coefficients[i] = sample.IntervalBits(rand, bits).Big()
	}

	return &polynomial
}

// FromCoefficients returns the polynomial a₀ + a₁⋅X + … with the given coefficients, lowest degree first.
func FromCoefficients(coefficients ...*big.Int) *Polynomial {
	p := &Polynomial{coefficients: make([]*big.Int, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = new(big.Int).Set(c)
	}
	return p
}

// Evaluate evaluates a polynomial in a given variable index
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(index *big.Int) *big.Int {
	result := new(big.Int)
	// reverse order
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result.Mul(result, index)
		result.Add(result, p.coefficients[i])
	}
	return result
}

// Points evaluates the polynomial at each of the given x-coordinates.
func (p *Polynomial) Points(xs ...*big.Int) []Point {
	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: new(big.Int).Set(x), Y: p.Evaluate(x)}
	}
	return points
}

// Constant returns a copy of the constant coefficient of the polynomial.
func (p *Polynomial) Constant() *big.Int {
	return new(big.Int).Set(p.coefficients[0])
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() uint32 {
	return uint32(len(p.coefficients)) - 1
}
