package token

import (
	"encoding/json"
	"fmt"
)

// DecodeRequest parses a token request body.
// The body must be exactly one JSON value. Keys match case-sensitively;
// absent or null fields stay empty, non-string values are rejected.
func DecodeRequest(data []byte) (Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}

	var req Request
	for key, dst := range map[string]*string{
		"room":     &req.Room,
		"username": &req.Username,
		"userId":   &req.UserID,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return Request{}, fmt.Errorf("decode request field %q: %w", key, err)
		}
	}
	return req, nil
}
