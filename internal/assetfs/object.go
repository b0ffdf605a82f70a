package assetfs

import (
	"encoding/json"

	"github.com/thoreinstein/aisync/internal/errors"
)

// DecodeWithExtra unmarshals the JSON object data into known and returns
// every key not listed in knownKeys, so a later EncodeWithExtra can write
// them back untouched.
func DecodeWithExtra(data []byte, known any, knownKeys ...string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a JSON object")
	}
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}

	for _, k := range knownKeys {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// EncodeWithExtra marshals known and merges in the extra keys. Keys set by
// known take precedence.
func EncodeWithExtra(known any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}

	merged := make(map[string]json.RawMessage, len(extra))
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
