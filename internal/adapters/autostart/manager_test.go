package autostart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"locator/internal/adapters/desktop"
	"locator/internal/application"
)

func TestEnable_WritesParsableDescriptor(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "autostart")
	m := NewManager(dir)

	err := m.Enable(Entry{Name: "locator", Exec: "/usr/bin/locator --hidden", Icon: "/usr/share/locator/logo.png"})
	if err != nil {
		t.Fatalf("Enable failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "locator.desktop"))
	if err != nil {
		t.Fatalf("descriptor not written: %v", err)
	}
	entry, err := desktop.Parse(data)
	if err != nil {
		t.Fatalf("written descriptor does not parse: %v\n%s", err, data)
	}
	if entry.Name != "locator" || entry.Exec != "/usr/bin/locator --hidden" {
		t.Errorf("parsed %+v", entry)
	}
	if entry.Icon != "/usr/share/locator/logo.png" {
		t.Errorf("Icon = %q", entry.Icon)
	}

	on, err := m.Enabled("locator")
	if err != nil || !on {
		t.Errorf("Enabled = %v, %v; want true", on, err)
	}
}

func TestEnable_OverwritesAndFlattensValues(t *testing.T) {
	m := NewManager(t.TempDir())
	if err := m.Enable(Entry{Name: "app", Exec: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := m.Enable(Entry{Name: "app", Exec: "new\nNoDisplay=true"}); err != nil {
		t.Fatal(err)
	}

	path, _ := m.Path("app")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	entry, err := desktop.Parse(data)
	if err != nil {
		t.Fatalf("injected newline hid the entry: %v", err)
	}
	if entry.Exec != "new NoDisplay=true" {
		t.Errorf("Exec = %q", entry.Exec)
	}
}

func TestDisable(t *testing.T) {
	m := NewManager(t.TempDir())
	if err := m.Enable(Entry{Name: "app", Exec: "app"}); err != nil {
		t.Fatal(err)
	}

	if err := m.Disable("app"); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}
	if on, _ := m.Enabled("app"); on {
		t.Error("entry still enabled")
	}
	if err := m.Disable("app"); err != nil {
		t.Errorf("second Disable should be a no-op, got %v", err)
	}
}

func TestInvalidNames(t *testing.T) {
	m := NewManager(t.TempDir())
	for _, name := range []string{"", "  ", "../evil", `a\b`, ".."} {
		err := m.Enable(Entry{Name: name, Exec: "x"})
		var valErr *application.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("Enable(%q) error = %v, want ValidationError", name, err)
		}
	}
	if err := m.Enable(Entry{Name: "app"}); err == nil {
		t.Error("missing exec should fail")
	}
}
