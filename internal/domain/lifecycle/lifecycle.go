// Package lifecycle holds shared start/stop tuning for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of servers, schedulers
// and database pools.
const DefaultTimeout = 15 * time.Second
