package reel

import (
	"fmt"
	"os"
)

// globalDebug gates misuse diagnostics. Off by default so release
// builds pay nothing on the per-frame path.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, API
// misuse that is silently ignored in release mode (non-positive
// playback rates, re-entrant Elapse) is logged to stderr, and
// re-entrant Elapse panics with a descriptive message instead of
// being dropped.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugWarnf logs a misuse warning to stderr in debug mode.
func debugWarnf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[reel] "+format+"\n", args...)
}

// debugPanicf panics with a descriptive message in debug mode. In
// release mode it does nothing; callers are expected to skip the
// offending operation.
func debugPanicf(format string, args ...any) {
	if !globalDebug {
		return
	}
	panic(fmt.Sprintf("reel debug: "+format, args...))
}
