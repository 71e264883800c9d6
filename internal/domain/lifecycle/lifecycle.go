// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-running deliveries.
const DefaultTimeout = 10 * time.Second
