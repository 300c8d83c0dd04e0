package main

// Notes:
// - runCommand wires notifyContext around every command. The cancellation
//   tests drive runCommand with stub parse/run functions so the context the
//   command sees, and the exit status it reports when that context dies,
//   are checked without a real index file.
// - runCommand configures the global logger, so those tests are not parallel.
// - OS signal delivery is covered in signal_unix_test.go.

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubParse returns empty search flags and passes args through.
func stubParse(args []string, _ *Environment) (*searchFlags, []string, error) {
	return &searchFlags{}, args, nil
}

// ---------------------------------------------------------------------------
// TestNotifyContext - Derived context lifecycle
// ---------------------------------------------------------------------------

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cancel     func(stop, cancelParent context.CancelFunc)
		wantClosed bool
	}{
		{"live until stopped", func(_, _ context.CancelFunc) {}, false},
		{"stop closes it", func(stop, _ context.CancelFunc) { stop() }, true},
		{"parent cancel closes it", func(_, cancelParent context.CancelFunc) { cancelParent() }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parent, cancelParent := context.WithCancel(context.Background())
			defer cancelParent()
			ctx, stop := notifyContext(parent)
			defer stop()

			tt.cancel(stop, cancelParent)

			select {
			case <-ctx.Done():
				if !tt.wantClosed {
					t.Fatal("context closed early")
				}
			default:
				if tt.wantClosed {
					t.Fatal("context still open")
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCommand_Cancellation - Exit status of an interrupted command
// ---------------------------------------------------------------------------

func TestRunCommand_Cancellation(t *testing.T) {
	t.Run("canceled run exits general", func(t *testing.T) {
		env, _, stderr := testEnv(nil)

		code := runCommand([]string{"linux"}, env, stubParse,
			func(context.Context, []string, *searchFlags, *Environment) error {
				return context.Canceled
			})

		if code != ExitGeneral {
			t.Errorf("runCommand() = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stderr.String(), "error: context canceled") {
			t.Errorf("stderr = %q, want context canceled error", stderr.String())
		}
	})

	t.Run("run receives a live signal context", func(t *testing.T) {
		env, _, stderr := testEnv(nil)

		var got []string
		code := runCommand([]string{"linux", "kernel"}, env, stubParse,
			func(ctx context.Context, args []string, _ *searchFlags, _ *Environment) error {
				got = args
				return ctx.Err()
			})

		if code != ExitSuccess {
			t.Errorf("runCommand() = %d, want %d (stderr %q)", code, ExitSuccess, stderr.String())
		}
		if strings.Join(got, " ") != "linux kernel" {
			t.Errorf("run args = %v, want [linux kernel]", got)
		}
	})

	t.Run("wrapped cancellation keeps its cause", func(t *testing.T) {
		env, _, stderr := testEnv(nil)

		code := runCommand(nil, env, stubParse,
			func(context.Context, []string, *searchFlags, *Environment) error {
				return errors.Join(errors.New("reading index.csv"), context.Canceled)
			})

		if code != ExitGeneral {
			t.Errorf("runCommand() = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stderr.String(), "reading index.csv") {
			t.Errorf("stderr = %q, want wrapped cause", stderr.String())
		}
	})
}
