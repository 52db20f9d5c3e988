//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it survives the launcher
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
