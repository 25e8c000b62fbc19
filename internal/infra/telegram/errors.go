// internal/infra/telegram/errors.go
package telegram

import "fmt"

// DeliveryError wraps a failure to deliver a message to the chat.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send telegram message: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
