package ports

import "os/exec"

// EditorOpener defines the interface for opening files in a graphical editor
type EditorOpener interface {
	// Command returns an exec.Cmd that opens path in the preferred editor.
	// It uses $VISUAL, falling back to the first installed candidate editor.
	Command(path string) (*exec.Cmd, error)
}
