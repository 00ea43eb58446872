package llm

import "errors"

// ErrTransient marks a provider failure that is worth retrying: network
// errors, timeouts, quota rejections, or empty completions. Callers decide
// the fallback once retries are exhausted.
var ErrTransient = errors.New("llm: transient provider error")

// IsTransient reports whether err carries the transient marker.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
