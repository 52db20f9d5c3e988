package editor

import (
	"errors"
	"os/exec"
	"testing"

	"locator/internal/application"
)

// fakeLookPath finds only the named programs, under /usr/bin
func fakeLookPath(installed ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, p := range installed {
			if p == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestCommand(t *testing.T) {
	candidates := []string{"code", "gedit", "kate"}

	tests := []struct {
		name      string
		visual    string
		installed []string
		wantPath  string
		wantErr   bool
	}{
		{
			name:      "VISUAL wins",
			visual:    "subl",
			installed: []string{"code"},
			wantPath:  "subl",
		},
		{
			name:      "first installed candidate",
			installed: []string{"kate", "gedit"},
			wantPath:  "/usr/bin/gedit",
		},
		{
			name:      "nothing installed",
			installed: nil,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			o := NewOpener(candidates, WithLookPath(fakeLookPath(tt.installed...)))

			cmd, err := o.Command("/home/u/script.py")
			if tt.wantErr {
				if !errors.Is(err, application.ErrNoOpener) {
					t.Fatalf("error = %v, want ErrNoOpener", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Args[0] != tt.wantPath {
				t.Errorf("editor = %q, want %q", cmd.Args[0], tt.wantPath)
			}
			if cmd.Args[len(cmd.Args)-1] != "/home/u/script.py" {
				t.Errorf("path not passed: %v", cmd.Args)
			}
		})
	}
}
