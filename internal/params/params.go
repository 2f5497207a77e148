package params

const (
	// MinBase is the smallest radix a share value may be written in.
	MinBase = 2
	// MaxAlphanumericBase is the largest radix expressible with the digits 0-9 and a-z.
	// Larger bases are accepted as long as every digit of the value stays below the base.
	MaxAlphanumericBase = 36

	// DefaultOutputBase is the radix used when rendering a recovered secret.
	DefaultOutputBase = 10

	SecParam = 256
	SecBytes = SecParam / 8

	// DigestLengthBytes is the size of the BLAKE3 output used for share-set fingerprints.
	DigestLengthBytes = SecBytes // = 32

	// CoefficientBits bounds the size of the random coefficients used to build test polynomials.
	CoefficientBits = SecParam

	// DefaultWorkers is the number of records reconstructed concurrently when
	// no configuration overrides it. Zero means one worker per CPU.
	DefaultWorkers = 0
)
