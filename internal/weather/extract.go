package weather

import (
	"encoding/json"
	"strings"
)

// ExtractJSON returns the first balanced JSON object embedded in text.
//
// Models wrap the payload in markdown fences or prose. Each '{' is tried in
// order as the start of an object; the decoder stops at the matching brace,
// so braces inside string values and any trailing text are ignored.
func ExtractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", &ParseError{Reason: "locate object", Err: ErrNoJSONObject}
	}

	var lastErr error
	for start >= 0 {
		dec := json.NewDecoder(strings.NewReader(text[start:]))
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if err == nil {
			return string(raw), nil
		}
		lastErr = err

		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	return "", &ParseError{Reason: lastErr.Error(), Err: ErrInvalidJSON}
}
