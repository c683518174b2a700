// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown work (DB ping, server
// drain).
const DefaultTimeout = 10 * time.Second
