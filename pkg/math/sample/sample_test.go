package sample

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taurusgroup/share-recovery/internal/params"
)

func TestIntervalBits(t *testing.T) {
	for _, bits := range []int{1, 7, 8, 9, 64, 255} {
		bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		for i := 0; i < 20; i++ {
			x := IntervalBits(rand.Reader, bits).Big()
			assert.True(t, new(big.Int).Abs(x).Cmp(bound) < 0, "IntervalBits(%d) generated %v", bits, x)
		}
	}
}

func TestIntervalBits_Signs(t *testing.T) {
	bits := 13
	bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	var sawNegative, sawPositive bool
	for i := 0; i < 200; i++ {
		x := IntervalBits(rand.Reader, bits).Big()
		abs := new(big.Int).Abs(x)
		assert.True(t, abs.Cmp(bound) < 0, "IntervalBits(%d) generated %v", bits, x)
		switch x.Sign() {
		case -1:
			sawNegative = true
		case 1:
			sawPositive = true
		}
	}
	assert.True(t, sawNegative)
	assert.True(t, sawPositive)
}

// This exists to save the results of functions we want to benchmark, to avoid
// having them optimized away.
var resultInt *big.Int

func BenchmarkIntervalBits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		resultInt = IntervalBits(rand.Reader, params.CoefficientBits).Big()
	}
}
