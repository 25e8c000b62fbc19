// internal/infra/practicum/errors.go
package practicum

import "fmt"

// TransportError reports a request that never completed or came back with a
// non-200 status. StatusCode is 0 when no response was received at all.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("endpoint %s is unreachable: %v", Endpoint, e.Err)
	}
	return fmt.Sprintf("API response code: %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("API response is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
