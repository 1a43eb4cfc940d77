package except

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
)

func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

func Require(err error) {
	Must(err == nil, "unexpected error: %v", err)
}

const logErrKey = "err"

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}

// Location identifies the call site of an unrecoverable error.
type Location struct {
	File string
	Line int
	Func string
}

func (l Location) String() string {
	return fmt.Sprintf("%s(%d)", l.File, l.Line)
}

// Hook handles unrecoverable errors. Hooks are expected to terminate the process.
type Hook func(loc Location, msg string)

var hook atomic.Pointer[Hook]

// SetHook replaces the process-wide hook used by Panic. A nil hook restores Abort.
func SetHook(h Hook) {
	if h == nil {
		hook.Store(nil)
		return
	}
	hook.Store(&h)
}

// exit is swapped out for testing.
var exit = os.Exit

// Abort is the default hook. It writes the location and message to stderr and exits.
func Abort(loc Location, msg string) {
	fmt.Fprintf(os.Stderr, "%v :: PANIC\n  In: %s\n  Message: %s\n", loc, loc.Func, msg)
	exit(2)
}

// Panic reports an unrecoverable error from its caller's location to the current hook. It never
// returns: if the hook does, Panic panics with the message.
func Panic(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	loc := Location{Func: "unknown"}
	if pc, file, line, ok := runtime.Caller(1); ok {
		loc.File, loc.Line = file, line
		if fn := runtime.FuncForPC(pc); fn != nil {
			loc.Func = fn.Name()
		}
	}
	h := Abort
	if ptr := hook.Load(); ptr != nil {
		h = *ptr
	}
	h(loc, msg)
	panic(msg)
}
