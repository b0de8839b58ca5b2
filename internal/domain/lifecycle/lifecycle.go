// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks and single store calls.
const DefaultTimeout = 10 * time.Second
