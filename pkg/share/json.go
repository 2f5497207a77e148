package share

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/taurusgroup/share-recovery/pkg/math/numeral"
	"github.com/taurusgroup/share-recovery/pkg/math/polynomial"
)

const keysField = "keys"

type keysJSON struct {
	N *int `json:"n"`
	K *int `json:"k"`
}

type shareJSON struct {
	Base  interface{} `json:"base"`
	Value *string     `json:"value"`
}

// UnmarshalJSON reads the envelope
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, "2": {"base": 2, "value": "111"}, …}
//
// where every key but "keys" is the base 10 x-coordinate of a share.
// The base may be given as a string or as a number.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	keysData, ok := raw[keysField]
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrInvalidEnvelope, keysField)
	}
	var keys keysJSON
	if err := json.Unmarshal(keysData, &keys); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidEnvelope, keysField, err)
	}
	if keys.N == nil || keys.K == nil {
		return fmt.Errorf("%w: %q must contain n and k", ErrInvalidEnvelope, keysField)
	}

	shares := make([]Share, 0, len(raw)-1)
	seen := make(map[Index]string, len(raw)-1)
	for key, value := range raw {
		if key == keysField {
			continue
		}
		idx, err := ParseIndex(key)
		if err != nil {
			return err
		}
		if other, ok := seen[idx]; ok {
			first, second := other, key
			if first > second {
				first, second = second, first
			}
			return fmt.Errorf("%w: %q and %q: %w", ErrDuplicateIndex, first, second, polynomial.ErrDuplicateX)
		}
		seen[idx] = key

		var sj shareJSON
		dec := json.NewDecoder(bytes.NewReader(value))
		dec.UseNumber()
		if err = dec.Decode(&sj); err != nil {
			return fmt.Errorf("%w: share %q: %v", ErrInvalidEnvelope, key, err)
		}
		if sj.Value == nil {
			return fmt.Errorf("%w: share %q has no value", ErrInvalidEnvelope, key)
		}
		base, err := parseJSONBase(sj.Base)
		if err != nil {
			return fmt.Errorf("share %q: %w", key, err)
		}
		shares = append(shares, Share{Index: idx, Base: base, Value: *sj.Value})
	}

	*s = *NewSet(*keys.N, *keys.K, shares...)
	return nil
}

func parseJSONBase(v interface{}) (int, error) {
	if n, ok := v.(json.Number); ok {
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", numeral.ErrInvalidBase, n)
		}
		return numeral.ParseBase(i)
	}
	return numeral.ParseBase(v)
}

// MarshalJSON writes the envelope read by UnmarshalJSON, with bases written as strings.
func (s *Set) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Shares)+1)
	out[keysField] = map[string]int{"n": s.N, "k": s.K}
	for _, sh := range s.Shares {
		out[sh.Index.String()] = map[string]string{
			"base":  strconv.Itoa(sh.Base),
			"value": sh.Value,
		}
	}
	return json.Marshal(out)
}
