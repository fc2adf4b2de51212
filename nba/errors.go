package nba

import "fmt"

// StatusError is a non-2xx response from the upstream. The body is truncated
// for error messages; Retry-After is captured verbatim when present.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
	RetryAfter string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nba: %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// DecodeError is a response body that did not match the endpoint's declared
// shape. Decode failures are never retried: a schema mismatch will not fix
// itself on the next attempt, and retrying would only mask the contract break.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("nba: decoding %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
