package share

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

type shareMarshal struct {
	_     struct{} `cbor:",toarray"`
	Index string
	Base  int
	Value string
}

type setMarshal struct {
	_      struct{} `cbor:",toarray"`
	N, K   int
	Shares []shareMarshal
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (s *Set) MarshalBinary() ([]byte, error) {
	sm := setMarshal{
		N:      s.N,
		K:      s.K,
		Shares: make([]shareMarshal, len(s.Shares)),
	}
	for i, sh := range s.Shares {
		sm.Shares[i] = shareMarshal{Index: sh.Index.String(), Base: sh.Base, Value: sh.Value}
	}
	return cbor.Marshal(&sm)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Indices are re-canonicalized and the shares re-sorted.
func (s *Set) UnmarshalBinary(data []byte) error {
	var sm setMarshal
	if err := cbor.Unmarshal(data, &sm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	shares := make([]Share, len(sm.Shares))
	for i, shm := range sm.Shares {
		idx, err := ParseIndex(shm.Index)
		if err != nil {
			return err
		}
		shares[i] = Share{Index: idx, Base: shm.Base, Value: shm.Value}
	}
	*s = *NewSet(sm.N, sm.K, shares...)
	return nil
}
