package wire

import "encoding/json"

// Result is the decoded acknowledgement from the sink. It is not validated
// against any schema.
type Result map[string]any

// Success reports the envelope's "success" flag. A body without the flag
// counts as success.
func (r Result) Success() bool {
	v, ok := r["success"]
	if !ok {
		return true
	}
	b, ok := v.(bool)
	return !ok || b
}

// ErrorText returns the envelope's "error" field, if any.
func (r Result) ErrorText() string {
	s, _ := r["error"].(string)
	return s
}

// Envelope is the response shape used by the sink for every endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
