// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every connect, ping and shutdown performed in fx hooks.
const DefaultTimeout = 10 * time.Second
