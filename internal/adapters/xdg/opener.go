// Package xdg hands files to the platform's default application.
package xdg

import (
	"fmt"
	"os/exec"
	"runtime"

	"locator/internal/application"
	"locator/internal/ports"
)

// Opener implements ports.DefaultOpener
type Opener struct {
	goos string
}

// Ensure Opener implements DefaultOpener
var _ ports.DefaultOpener = (*Opener)(nil)

// NewOpener creates an opener for the running platform
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// NewOpenerFor creates an opener for the given GOOS value
func NewOpenerFor(goos string) *Opener {
	return &Opener{goos: goos}
}

// Command returns the platform open command for target, a path or URI
func (o *Opener) Command(target string) (*exec.Cmd, error) {
	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		// The empty argument is the window title start expects first
		return exec.Command("cmd", "/c", "start", "", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system %s: %w", o.goos, application.ErrNoOpener)
	}
}
