package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup runs before the crash report is printed, typically restoring
// the terminal from a fullscreen backend
var crashCleanup atomic.Value // func()

// SetCrashCleanup registers a cleanup function invoked by HandleCrash.
// Fullscreen demos register their screen teardown here so a panic does not
// leave the terminal in raw mode.
func SetCrashCleanup(fn func()) {
	crashCleanup.Store(fn)
}

// HandleCrash is the unified panic handler: restore the terminal, print the
// panic value and stack trace, exit non-zero
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := crashCleanup.Load().(func()); ok && fn != nil {
		fn()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
