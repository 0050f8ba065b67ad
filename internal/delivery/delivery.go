// Package delivery defines the common contract for transport servers.
package delivery

import "context"

// Delivery is implemented by every transport server the application can
// expose. Serve blocks until the server stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
