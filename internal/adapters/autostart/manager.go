// Package autostart manages the login autostart entry in the XDG autostart
// directory.
package autostart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"locator/internal/application"
)

// Entry describes the program to start at login
type Entry struct {
	Name    string
	Exec    string
	Icon    string
	Comment string
}

// Manager writes and removes autostart descriptors in Dir
type Manager struct {
	Dir string
}

// NewManager creates a manager for dir
func NewManager(dir string) *Manager {
	return &Manager{Dir: dir}
}

// DefaultDir returns ~/.config/autostart
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "autostart"), nil
}

// Enable writes the descriptor for e, replacing any previous one
func (m *Manager) Enable(e Entry) error {
	if err := application.ValidateRequired("name", e.Name); err != nil {
		return err
	}
	if err := application.ValidateRequired("exec", e.Exec); err != nil {
		return err
	}
	path, err := m.path(e.Name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create autostart dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Render(e)), 0644); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to install autostart entry: %w", err)
	}
	return nil
}

// Disable removes the descriptor for name. A missing descriptor is not an
// error.
func (m *Manager) Disable(name string) error {
	path, err := m.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove autostart entry: %w", err)
	}
	return nil
}

// Enabled reports whether a descriptor for name exists
func (m *Manager) Enabled(name string) (bool, error) {
	path, err := m.path(name)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check autostart entry: %w", err)
	}
	return true, nil
}

// Path returns the descriptor file used for name
func (m *Manager) Path(name string) (string, error) {
	return m.path(name)
}

func (m *Manager) path(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := application.ValidateRequired("name", name); err != nil {
		return "", err
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", &application.ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must not contain path separators: %s", name),
		}
	}
	return filepath.Join(m.Dir, name+".desktop"), nil
}

// Render returns the descriptor text for e
func Render(e Entry) string {
	comment := e.Comment
	if comment == "" {
		comment = "Started automatically at login"
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", oneLine(e.Name))
	fmt.Fprintf(&b, "Exec=%s\n", oneLine(e.Exec))
	if e.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", oneLine(e.Icon))
	}
	fmt.Fprintf(&b, "Comment=%s\n", oneLine(comment))
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return b.String()
}

// oneLine keeps a value from spilling into the next key
func oneLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\r", " ")), " ")
}
