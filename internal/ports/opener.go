package ports

import "os/exec"

// DefaultOpener hands a path or URI to the platform's default handler
type DefaultOpener interface {
	// Command returns the platform open command for target
	Command(target string) (*exec.Cmd, error)
}
