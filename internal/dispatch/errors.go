package dispatch

// Error is the only error type Send returns. Err holds the cause and is
// rendered behind a single fixed prefix.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "Failed to send message: " + e.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from Discord.
type APIError struct {
	StatusCode int
	Code       int // Discord's JSON error code, zero if absent
	Message    string
}

func (e *APIError) Error() string {
	return "Provider API Error: " + e.Message
}
