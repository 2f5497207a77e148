package hash

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_WriteAny(t *testing.T) {
	var err error

	testFunc := func(vs ...interface{}) error {
		h := New("test")
		for _, v := range vs {
			err = h.WriteAny(v)
			if err != nil {
				return err
			}
		}
		return nil
	}

	assert.NoError(t, testFunc(big.NewInt(35)))
	assert.NoError(t, testFunc(big.NewInt(-35)))
	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc("share", 3))
	assert.NoError(t, testFunc(BytesWithDomain{TheDomain: "custom", Bytes: []byte{7}}))

	var i *big.Int
	assert.Error(t, testFunc(i))
	assert.Error(t, testFunc(3.5))

	assert.NoError(t, testFunc(big.NewInt(35), []byte{1, 4, 6}))
}

func TestHash_WriteAny_Collision(t *testing.T) {
	var err error

	testFunc := func(vs ...interface{}) ([]byte, error) {
		h := New("test")
		for _, v := range vs {
			err = h.WriteAny(v)
			if err != nil {
				return nil, err
			}
		}
		return h.Sum(), nil
	}
	b1 := []byte("1)(big.Int\x02*data_added*")
	b2 := []byte("3")
	n2 := new(big.Int)
	n2.SetString(hex.EncodeToString(b2), 16)
	h1, err := testFunc(b1, n2)
	assert.NoError(t, err)

	b1 = []byte("1")
	b2 = []byte("*data_added*)(big.Int\x023")
	n2 = new(big.Int)
	n2.SetString(hex.EncodeToString(b2), 16)
	h2, err := testFunc(b1, n2)
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)

	// the sign of an integer is part of its encoding
	h1, err = testFunc(big.NewInt(5))
	require.NoError(t, err)
	h2, err = testFunc(big.NewInt(-5))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	// the same bytes under a different type produce a different digest
	h1, err = testFunc("a")
	require.NoError(t, err)
	h2, err = testFunc([]byte("a"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHash_Domain(t *testing.T) {
	h1 := New("a")
	h2 := New("b")
	assert.NotEqual(t, h1.Sum(), h2.Sum())
	assert.Equal(t, New("a").Sum(), h1.Sum())
	assert.Len(t, h1.Sum(), DigestLengthBytes)
	assert.Len(t, h1.Hex(), 2*DigestLengthBytes)
}
