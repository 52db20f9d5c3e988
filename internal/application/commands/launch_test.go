package commands

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"locator/internal/application"
	"locator/internal/domain"
)

type recordingLauncher struct {
	launched []domain.Resource
	err      error
}

func (l *recordingLauncher) Command(r domain.Resource) (*exec.Cmd, error) {
	return exec.Command("true"), nil
}

func (l *recordingLauncher) Launch(_ context.Context, r domain.Resource) error {
	if l.err != nil {
		return l.err
	}
	l.launched = append(l.launched, r)
	return nil
}

func launchFixture() *stubSearcher {
	return &stubSearcher{result: domain.SearchResult{
		Seq: 1,
		Resources: []domain.Resource{
			domain.ApplicationResource(domain.Application{Name: "Firefox", Exec: "firefox"}),
			domain.FileResource(domain.File{Name: "firefox.pdf", Path: "/docs/firefox.pdf"}),
			domain.FileResource(domain.File{Name: "relative.pdf", Path: "docs/relative.pdf"}),
		},
	}}
}

func TestLaunchCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		index   int
		wantErr bool
	}{
		{name: "valid", query: "fire", index: 0},
		{name: "empty query", query: "", wantErr: true},
		{name: "negative index", query: "fire", index: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLaunchCommand(launchFixture(), &recordingLauncher{}, tt.query, tt.index).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLaunchCommand_Execute(t *testing.T) {
	t.Run("launches the selected hit", func(t *testing.T) {
		launcher := &recordingLauncher{}
		res, err := NewLaunchCommand(launchFixture(), launcher, "fire", 1).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(launcher.launched) != 1 || launcher.launched[0].Target() != "/docs/firefox.pdf" {
			t.Errorf("launched %v", launcher.launched)
		}
		if res.Message != "Launched firefox.pdf" {
			t.Errorf("Message = %q", res.Message)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		launcher := &recordingLauncher{}
		_, err := NewLaunchCommand(launchFixture(), launcher, "fire", 3).Execute(context.Background())
		if !errors.Is(err, application.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
		if len(launcher.launched) != 0 {
			t.Error("nothing should be launched")
		}
	})

	t.Run("invalid resource is not launched", func(t *testing.T) {
		launcher := &recordingLauncher{}
		_, err := NewLaunchCommand(launchFixture(), launcher, "fire", 2).Execute(context.Background())
		if !errors.Is(err, application.ErrInvalidResource) {
			t.Fatalf("error = %v, want ErrInvalidResource", err)
		}
		if len(launcher.launched) != 0 {
			t.Error("invalid resource was launched")
		}
	})

	t.Run("launcher failure is wrapped", func(t *testing.T) {
		launcher := &recordingLauncher{err: application.ErrNoOpener}
		_, err := NewLaunchCommand(launchFixture(), launcher, "fire", 0).Execute(context.Background())

		var launchErr *application.LaunchError
		if !errors.As(err, &launchErr) {
			t.Fatalf("expected LaunchError, got %v", err)
		}
		if launchErr.Name != "Firefox" || launchErr.Target != "firefox" {
			t.Errorf("got %+v", launchErr)
		}
		if !errors.Is(err, application.ErrNoOpener) {
			t.Error("cause lost")
		}
	})
}
