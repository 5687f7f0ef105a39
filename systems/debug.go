package systems

import "sync/atomic"

// debugLoggingEnabled gates the per-transition debug logs, which are too
// chatty to build on every step.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables debug logging for the enemy systems.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
