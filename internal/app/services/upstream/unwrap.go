package upstream

import (
	"bytes"

	"github.com/goccy/go-json"
)

// UnwrapList flattens the collection shapes the backend answers with:
// a raw array, {data: [...]}, or the paginated {data: {data: [...]}}
// form. Anything else yields an empty array rather than an error so
// list screens degrade to "no rows" instead of failing.
func UnwrapList(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed
	}

	var outer struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &outer); err != nil || len(outer.Data) == 0 {
		return json.RawMessage("[]")
	}

	inner := bytes.TrimSpace(outer.Data)
	if len(inner) > 0 && inner[0] == '[' {
		return inner
	}

	var nested struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(inner, &nested); err == nil {
		paged := bytes.TrimSpace(nested.Data)
		if len(paged) > 0 && paged[0] == '[' {
			return paged
		}
	}
	return json.RawMessage("[]")
}

// UnwrapData strips a single {data: {...}} wrapper when present and
// otherwise returns the body untouched.
func UnwrapData(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	var outer struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &outer); err == nil && len(bytes.TrimSpace(outer.Data)) > 0 {
		return bytes.TrimSpace(outer.Data)
	}
	return trimmed
}
