//go:build windows

// Package process terminates the headless browser together with the
// helper processes it spawns.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup force-kills pid and its children with taskkill.
// Non-positive pids are ignored.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
