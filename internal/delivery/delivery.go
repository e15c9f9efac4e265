// Package delivery defines the transport adapters started by the composition root.
package delivery

import "context"

// Delivery is a transport that serves requests until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
