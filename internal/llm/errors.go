package llm

import "fmt"

// AuthError means the credential is absent or the service rejected it.
// Credentials are not self-correcting, so the orchestrator never retries
// this; it is the one error class that escapes to the caller.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth: " + e.Reason
}

// NetworkError is a transport-level failure: timeout, connection reset,
// or a non-success status that is not an auth rejection.
type NetworkError struct {
	Status int // HTTP status code, 0 when the request never completed
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network: %v", e.Err)
	}
	return fmt.Sprintf("network: completion service returned status %d", e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }
