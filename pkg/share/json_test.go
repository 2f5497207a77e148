package share

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/share-recovery/pkg/math/numeral"
	"github.com/taurusgroup/share-recovery/pkg/math/polynomial"
)

const testcase1 = `{
    "keys": {
        "n": 4,
        "k": 3
    },
    "1": {
        "base": "10",
        "value": "4"
    },
    "2": {
        "base": "2",
        "value": "111"
    },
    "3": {
        "base": "10",
        "value": "12"
    },
    "6": {
        "base": "4",
        "value": "213"
    }
}`

func TestSet_UnmarshalJSON(t *testing.T) {
	var s Set
	require.NoError(t, json.Unmarshal([]byte(testcase1), &s))
	assert.Equal(t, 4, s.N)
	assert.Equal(t, 3, s.K)
	assert.Equal(t, IndexSlice{"1", "2", "3", "6"}, s.Indices())
	assert.Equal(t, Share{Index: "2", Base: 2, Value: "111"}, s.Shares[1])
	require.NoError(t, s.Validate())
}

func TestSet_UnmarshalJSON_NumericOrder(t *testing.T) {
	var s Set
	data := `{"keys": {"n": 3, "k": 2}, "10": {"base": 10, "value": "1"}, "9": {"base": 10, "value": "1"}, "2": {"base": 10, "value": "1"}}`
	require.NoError(t, json.Unmarshal([]byte(data), &s))
	assert.Equal(t, IndexSlice{"2", "9", "10"}, s.Indices())
	assert.Equal(t, 10, s.Shares[0].Base)
}

func TestSet_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"not an object", `[1, 2]`, ErrInvalidEnvelope},
		{"missing keys", `{"1": {"base": "10", "value": "4"}}`, ErrInvalidEnvelope},
		{"missing k", `{"keys": {"n": 1}, "1": {"base": "10", "value": "4"}}`, ErrInvalidEnvelope},
		{"bad index", `{"keys": {"n": 1, "k": 1}, "one": {"base": "10", "value": "4"}}`, ErrInvalidIndex},
		{"duplicate index", `{"keys": {"n": 2, "k": 1}, "1": {"base": "10", "value": "4"}, "01": {"base": "10", "value": "4"}}`, ErrDuplicateIndex},
		{"duplicate x", `{"keys": {"n": 2, "k": 2}, "1": {"base": "10", "value": "4"}, "01": {"base": "10", "value": "7"}}`, polynomial.ErrDuplicateX},
		{"missing value", `{"keys": {"n": 1, "k": 1}, "1": {"base": "10"}}`, ErrInvalidEnvelope},
		{"bad base", `{"keys": {"n": 1, "k": 1}, "1": {"base": "ten", "value": "4"}}`, numeral.ErrInvalidBase},
		{"fractional base", `{"keys": {"n": 1, "k": 1}, "1": {"base": 2.5, "value": "1"}}`, numeral.ErrInvalidBase},
		{"missing base", `{"keys": {"n": 1, "k": 1}, "1": {"value": "1"}}`, numeral.ErrInvalidBase},
		{"numeric value", `{"keys": {"n": 1, "k": 1}, "1": {"base": "10", "value": 4}}`, ErrInvalidEnvelope},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Set
			assert.ErrorIs(t, json.Unmarshal([]byte(tt.data), &s), tt.err)
		})
	}
}

func TestSet_UnmarshalJSON_DuplicateMessage(t *testing.T) {
	data := []byte(`{"keys": {"n": 2, "k": 2}, "1": {"base": "10", "value": "4"}, "01": {"base": "10", "value": "7"}}`)
	// map iteration order varies between runs
	for i := 0; i < 20; i++ {
		var s Set
		err := json.Unmarshal(data, &s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"01" and "1"`)
	}
}

func TestSet_MarshalJSON_RoundTrip(t *testing.T) {
	var s Set
	require.NoError(t, json.Unmarshal([]byte(testcase1), &s))

	data, err := json.Marshal(&s)
	require.NoError(t, err)

	var s2 Set
	require.NoError(t, json.Unmarshal(data, &s2))
	assert.Equal(t, s, s2)
	assert.JSONEq(t, testcase1, string(data))
}
