package xfs

import "github.com/mtth/xfs/internal/except"

type (
	// Location is the call site of an unrecoverable error.
	Location = except.Location

	// PanicHook is invoked with the location and message of unrecoverable errors, for example when the
	// working directory cannot be determined. It should terminate the process; if it returns, the
	// calling goroutine panics.
	PanicHook = except.Hook
)

// SetPanicHook configures the process-wide PanicHook. It is meant to be called once, at startup. The
// default hook prints the location and message to stderr, then exits. Passing nil restores it.
func SetPanicHook(h PanicHook) {
	except.SetHook(h)
}
