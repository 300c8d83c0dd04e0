//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext derives the context a command runs under. It is canceled
// on Ctrl-C; stop releases the signal registration. Windows has no SIGTERM.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
