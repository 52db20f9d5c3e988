package editor

import (
	"fmt"
	"os"
	"os/exec"
	"slices"

	"locator/internal/application"
	"locator/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	candidates []string
	lookPath   func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// Option configures the Opener
type Option func(*Opener)

// WithLookPath replaces exec.LookPath, mainly for tests
func WithLookPath(fn func(string) (string, error)) Option {
	return func(o *Opener) {
		o.lookPath = fn
	}
}

// NewOpener creates an editor opener that falls back through candidates in
// order when $VISUAL is unset
func NewOpener(candidates []string, opts ...Option) *Opener {
	o := &Opener{
		candidates: slices.Clone(candidates),
		lookPath:   exec.LookPath,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Command returns an exec.Cmd for opening a file in a graphical editor.
// The process is not attached to the terminal.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor for %s: set $VISUAL or install one of %v: %w",
			path, o.candidates, application.ErrNoOpener)
	}
	return exec.Command(editor, path), nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	// $VISUAL names a graphical editor; $EDITOR is usually a terminal one
	// and would have no terminal to attach to
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range o.candidates {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
