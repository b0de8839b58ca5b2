// Package delivery defines the contract every transport (HTTP, worker, ...) fulfills.
package delivery

import "context"

// Delivery is a long-running transport started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
