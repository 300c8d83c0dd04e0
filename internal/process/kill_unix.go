//go:build !windows

// Package process terminates the headless browser together with the
// helper processes it spawns.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid.
// Non-positive pids are ignored: -0 would target our own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// launcher.Kill remains the fallback, so the error is dropped.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
