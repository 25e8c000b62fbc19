// internal/domain/homework/api.go
package homework

import "context"

// API defines an interface for fetching homework status updates from the
// review service. This helps in decoupling the watchdog from the HTTP client.
type API interface {
	// FetchUpdates returns the decoded response document for submissions
	// updated since the given unix timestamp. No shape is enforced here.
	FetchUpdates(ctx context.Context, since int64) (any, error)
}
