package xdg

import (
	"errors"
	"slices"
	"testing"

	"locator/internal/application"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		target   string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "linux",
			goos:     "linux",
			target:   "/home/u/report.pdf",
			wantArgs: []string{"xdg-open", "/home/u/report.pdf"},
		},
		{
			name:     "darwin",
			goos:     "darwin",
			target:   "/Users/u/report.pdf",
			wantArgs: []string{"open", "/Users/u/report.pdf"},
		},
		{
			name:     "windows",
			goos:     "windows",
			target:   `C:\Users\u\report.pdf`,
			wantArgs: []string{"cmd", "/c", "start", "", `C:\Users\u\report.pdf`},
		},
		{
			name:    "unsupported",
			goos:    "plan9",
			target:  "/report.pdf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewOpenerFor(tt.goos).Command(tt.target)
			if tt.wantErr {
				if !errors.Is(err, application.ErrNoOpener) {
					t.Fatalf("error = %v, want ErrNoOpener", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("Args = %q, want %q", cmd.Args, tt.wantArgs)
			}
		})
	}
}
