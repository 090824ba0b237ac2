package hr

import "encoding/json"

// decodeList normalizes the three list envelope shapes the HR API is known
// to produce: a bare JSON array, an object with a "data" array, or an object
// keyed by the resource name (e.g. {"employees": [...]}). Any other shape
// yields an empty slice and ok=false so the caller can log a warning; shape
// mismatch is never an error.
func decodeList[T any](body []byte, resource string) (items []T, ok bool) {
	if json.Unmarshal(body, &items) == nil {
		return items, true
	}

	var envelope map[string]json.RawMessage
	if json.Unmarshal(body, &envelope) != nil {
		return nil, false
	}
	for _, key := range []string{"data", resource} {
		raw, exists := envelope[key]
		if !exists {
			continue
		}
		if json.Unmarshal(raw, &items) == nil {
			return items, true
		}
	}
	return nil, false
}
