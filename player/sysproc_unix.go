//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// detached puts mpv in its own session so it keeps playing after gtv exits.
func detached() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

func kill(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	// the session leader's pid is also its process group id
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	return cmd.Process.Kill()
}
