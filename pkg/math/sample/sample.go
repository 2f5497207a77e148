package sample

import (
	"fmt"
	"io"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// readMagnitude fills a buffer with exactly enough random bytes for bits, clearing the excess high bits.
func readMagnitude(rand io.Reader, bits int) []byte {
	buf := make([]byte, (bits+7)/8)
	mustReadBits(rand, buf)
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= 0xff >> excess
	}
	return buf
}
