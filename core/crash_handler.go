// Package core holds process-wide crash handling for goroutines that run while
// the terminal is in raw mode.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashOutput   io.Writer = os.Stderr
	crashExit               = os.Exit
)

// SetCrashTerminal registers the screen restored before a crash report
func SetCrashTerminal(f Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = f
}

// HandleCrash restores the terminal, prints the panic and its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	out := crashOutput
	exit := crashExit
	crashMu.Unlock()

	if term != nil {
		term.Fini()
	}

	fmt.Fprintf(out, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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
