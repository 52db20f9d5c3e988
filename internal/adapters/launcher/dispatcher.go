// Package launcher starts applications and opens files as detached
// processes.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"locator/internal/application"
	"locator/internal/config"
	"locator/internal/domain"
	"locator/internal/ports"
)

var (
	imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg"}
	codeExtensions  = []string{".sh", ".py", ".js", ".html", ".css", ".txt", ".csv", ".json", ".md"}
)

// Dispatcher implements ports.Launcher
type Dispatcher struct {
	editor   ports.EditorOpener
	opener   ports.DefaultOpener
	java     string
	viewers  []string
	lookPath func(string) (string, error)
	logger   *log.Logger
}

// Ensure Dispatcher implements Launcher
var _ ports.Launcher = (*Dispatcher)(nil)

// Option configures the Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the diagnostics logger
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithLookPath replaces exec.LookPath, mainly for tests
func WithLookPath(fn func(string) (string, error)) Option {
	return func(d *Dispatcher) {
		d.lookPath = fn
	}
}

// NewDispatcher creates a dispatcher using the launch candidates in cfg
func NewDispatcher(cfg *config.Config, editor ports.EditorOpener, opener ports.DefaultOpener, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		editor:   editor,
		opener:   opener,
		java:     cfg.Launch.JavaRuntime,
		viewers:  slices.Clone(cfg.Launch.ImageViewers),
		lookPath: exec.LookPath,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Command builds the process for r without starting it
func (d *Dispatcher) Command(r domain.Resource) (*exec.Cmd, error) {
	if err := application.ValidateResource(r); err != nil {
		return nil, err
	}

	if r.Kind == domain.KindApplication {
		return exec.Command("sh", "-c", r.App.Exec), nil
	}

	path := r.File.Path
	ext := r.File.Extension
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(path))
	}

	switch {
	case ext == ".jar":
		return exec.Command(d.java, "-jar", path), nil
	case slices.Contains(imageExtensions, ext):
		for _, viewer := range d.viewers {
			if bin, err := d.lookPath(viewer); err == nil {
				return exec.Command(bin, path), nil
			}
		}
	case slices.Contains(codeExtensions, ext):
		cmd, err := d.editor.Command(path)
		if err == nil {
			return cmd, nil
		}
		if !errors.Is(err, application.ErrNoOpener) {
			return nil, err
		}
		d.logger.Printf("no editor for %s, using default opener", path)
	}

	return d.opener.Command(path)
}

// Launch starts r detached from this process and returns once it has been
// spawned. The child is reaped in the background.
func (d *Dispatcher) Launch(ctx context.Context, r domain.Resource) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd, err := d.Command(r)
	if err != nil {
		return err
	}

	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	d.logger.Printf("launched %s (pid %d)", r, cmd.Process.Pid)

	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
