// Package delivery defines the contract every transport entrypoint
// (HTTP API, worker) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by main and stopped through its
// fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
