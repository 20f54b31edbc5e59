// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound surface such as an HTTP server or a
// push-subscription worker. Serve blocks until ctx is cancelled and returns
// after graceful shutdown completes.
type Delivery interface {
	Serve(ctx context.Context) error
}
