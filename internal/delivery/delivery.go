// Package delivery defines the serving surface contract shared by the HTTP
// worker and the background schedulers.
package delivery

import "context"

// Delivery is a long-running serving component started by the application
// entrypoint. Serve blocks until the component stops or the context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
