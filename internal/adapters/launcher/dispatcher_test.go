package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
	"time"

	"locator/internal/application"
	"locator/internal/config"
	"locator/internal/domain"
)

type fakeEditor struct{ err error }

func (e fakeEditor) Command(path string) (*exec.Cmd, error) {
	if e.err != nil {
		return nil, e.err
	}
	return exec.Command("editor", path), nil
}

type fakeOpener struct{}

func (fakeOpener) Command(target string) (*exec.Cmd, error) {
	return exec.Command("xdg-open", target), nil
}

func lookPathFor(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		if slices.Contains(installed, name) {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
}

func file(path string) domain.Resource {
	return domain.FileResource(domain.File{
		Name:      filepath.Base(path),
		Path:      path,
		Extension: filepath.Ext(path),
	})
}

func TestCommand(t *testing.T) {
	cfg := config.Default("/home/u")

	tests := []struct {
		name      string
		resource  domain.Resource
		editor    fakeEditor
		installed []string
		wantArgs  []string
	}{
		{
			name:     "application runs through the shell",
			resource: domain.ApplicationResource(domain.Application{Name: "Firefox", Exec: "firefox --new-window"}),
			wantArgs: []string{"sh", "-c", "firefox --new-window"},
		},
		{
			name:     "jar runs on the java runtime",
			resource: file("/home/u/Downloads/tool.jar"),
			wantArgs: []string{"java", "-jar", "/home/u/Downloads/tool.jar"},
		},
		{
			name:      "image opens in first installed viewer",
			resource:  file("/home/u/Pictures/cat.png"),
			installed: []string{"feh", "ristretto"},
			wantArgs:  []string{"/usr/bin/ristretto", "/home/u/Pictures/cat.png"},
		},
		{
			name:     "image without viewer uses default opener",
			resource: file("/home/u/Pictures/cat.jpg"),
			wantArgs: []string{"xdg-open", "/home/u/Pictures/cat.jpg"},
		},
		{
			name:     "script opens in editor",
			resource: file("/home/u/Documents/build.sh"),
			wantArgs: []string{"editor", "/home/u/Documents/build.sh"},
		},
		{
			name:     "script without editor uses default opener",
			resource: file("/home/u/Documents/main.py"),
			editor:   fakeEditor{err: fmt.Errorf("none: %w", application.ErrNoOpener)},
			wantArgs: []string{"xdg-open", "/home/u/Documents/main.py"},
		},
		{
			name:     "document uses default opener",
			resource: file("/home/u/Documents/report.pdf"),
			wantArgs: []string{"xdg-open", "/home/u/Documents/report.pdf"},
		},
		{
			name: "extension derived from path when missing",
			resource: domain.FileResource(domain.File{
				Name: "App.JAR",
				Path: "/home/u/App.JAR",
			}),
			wantArgs: []string{"java", "-jar", "/home/u/App.JAR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(cfg, tt.editor, fakeOpener{}, WithLookPath(lookPathFor(tt.installed...)))
			cmd, err := d.Command(tt.resource)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("Args = %q, want %q", cmd.Args, tt.wantArgs)
			}
		})
	}
}

func TestCommand_EditorFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	d := NewDispatcher(config.Default("/home/u"), fakeEditor{err: boom}, fakeOpener{})

	if _, err := d.Command(file("/home/u/x.sh")); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestCommand_RejectsInvalidResource(t *testing.T) {
	d := NewDispatcher(config.Default("/home/u"), fakeEditor{}, fakeOpener{})

	_, err := d.Command(domain.FileResource(domain.File{Name: "x.pdf", Path: "x.pdf"}))
	if !errors.Is(err, application.ErrInvalidResource) {
		t.Errorf("error = %v, want ErrInvalidResource", err)
	}
}

func TestLaunch_StartsDetachedProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	marker := filepath.Join(t.TempDir(), "launched")
	app := domain.ApplicationResource(domain.Application{Name: "Touch", Exec: "touch " + marker})

	d := NewDispatcher(config.Default("/home/u"), fakeEditor{}, fakeOpener{})
	if err := d.Launch(context.Background(), app); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(marker); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("launched command never ran")
}

func TestLaunch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDispatcher(config.Default("/home/u"), fakeEditor{}, fakeOpener{})
	err := d.Launch(ctx, domain.ApplicationResource(domain.Application{Name: "X", Exec: "true"}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
