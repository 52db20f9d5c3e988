package cmd

import (
	"testing"
	"time"

	"locator/internal/domain"
)

func TestToJSON(t *testing.T) {
	mod := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	app := toJSON(domain.ApplicationResource(domain.Application{Name: "Firefox", Exec: "firefox", IconPath: "/icons/firefox.png"}))
	if app.Kind != "Application" || app.Exec != "firefox" || app.Icon != "/icons/firefox.png" {
		t.Errorf("application = %+v", app)
	}
	if app.Path != "" || app.Modified != nil {
		t.Errorf("application carries file fields: %+v", app)
	}

	file := toJSON(domain.FileResource(domain.File{Name: "report.pdf", Path: "/home/u/report.pdf", Size: 42, ModTime: mod}))
	if file.Kind != "File" || file.Path != "/home/u/report.pdf" || file.Size != 42 {
		t.Errorf("file = %+v", file)
	}
	if file.Modified == nil || !file.Modified.Equal(mod) {
		t.Errorf("Modified = %v, want %v", file.Modified, mod)
	}
}
