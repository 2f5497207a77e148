package hash

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/taurusgroup/share-recovery/internal/params"
	"github.com/zeebo/blake3"
)

const DigestLengthBytes = params.DigestLengthBytes

// Hash is the hash function we use for fingerprinting share sets.
//
// Internally, this is a wrapper around blake3.Hasher, every value written to it
// is domain separated and length prefixed.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash struct whose state is initialized with the given domain.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_ = writeWithDomain(hash.h, BytesWithDomain{TheDomain: "init", Bytes: []byte(domain)})
	return hash
}

// Digest returns an extendable output stream for the current state.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns the first DigestLengthBytes of Digest.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// Hex returns Sum encoded as a lowercase hexadecimal string.
func (hash *Hash) Hex() string {
	return hex.EncodeToString(hash.Sum())
}

// WriteAny writes each value to the hash state, in order.
//
// []byte, string, int and *big.Int are tagged with their type name as domain.
// A WriterToWithDomain brings its own domain. Any other type is an error.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		object, err := withDomain(d)
		if err != nil {
			return err
		}
		if err = writeWithDomain(hash.h, object); err != nil {
			return fmt.Errorf("hash.Hash: write %s: %w", object.Domain(), err)
		}
	}
	return nil
}

func withDomain(d interface{}) (WriterToWithDomain, error) {
	switch t := d.(type) {
	case []byte:
		return BytesWithDomain{TheDomain: "[]byte", Bytes: t}, nil
	case string:
		return BytesWithDomain{TheDomain: "string", Bytes: []byte(t)}, nil
	case int:
		return BytesWithDomain{TheDomain: "int", Bytes: intBytes(big.NewInt(int64(t)))}, nil
	case *big.Int:
		if t == nil {
			return nil, fmt.Errorf("hash.Hash: nil *big.Int")
		}
		return BytesWithDomain{TheDomain: "big.Int", Bytes: intBytes(t)}, nil
	case WriterToWithDomain:
		return t, nil
	default:
		return nil, fmt.Errorf("hash.Hash: unsupported type %T", d)
	}
}

// intBytes encodes x as a sign byte followed by its big-endian magnitude.
func intBytes(x *big.Int) []byte {
	sign := byte(0)
	if x.Sign() < 0 {
		sign = 1
	}
	return append([]byte{sign}, x.Bytes()...)
}
