package agent

import (
	"encoding/json"
	"strings"

	"github.com/turiniq/agent-platform/pkg/logging"
)

// CleanJSON strips markdown code fences around a model response and returns
// a string guaranteed to parse as JSON. Malformed output degrades to "{}"
// rather than an error: bad model output must never crash a conversation.
func CleanJSON(raw string, logger *logging.Logger) string {
	cleaned := StripFences(raw)
	if cleaned == "" || !json.Valid([]byte(cleaned)) {
		if logger != nil {
			logger.Error("model returned invalid JSON", "raw", raw)
		}
		return "{}"
	}
	return cleaned
}

// DecodeJSON cleans raw and unmarshals it into v. Malformed output decodes
// the empty object, leaving v's zero values untouched.
func DecodeJSON(raw string, logger *logging.Logger, v any) {
	_ = json.Unmarshal([]byte(CleanJSON(raw, logger)), v)
}

// StripFences removes a leading ```json (or bare ```) fence and a trailing
// ``` fence, then trims whitespace. Unfenced input passes through unchanged.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// LooksFenced reports whether the model wrapped its output in a JSON code
// fence. The support branch only cleans responses that look fenced; plain
// prose is forwarded untouched.
func LooksFenced(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "```json")
}
