package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default("/home/test")

	if cfg.MaxDepth != 4 {
		t.Errorf("MaxDepth = %d, want 4", cfg.MaxDepth)
	}
	if cfg.MaxResultsPerRoot != 500 {
		t.Errorf("MaxResultsPerRoot = %d, want 500", cfg.MaxResultsPerRoot)
	}
	if !slices.Equal(cfg.IconExtensions, []string{".png", ".svg", ".xpm", ".ico"}) {
		t.Errorf("unexpected icon extensions: %v", cfg.IconExtensions)
	}
	if cfg.IconSizeDirs[0] != "scalable" {
		t.Errorf("scalable should be probed first, got %v", cfg.IconSizeDirs)
	}
	if !slices.Contains(cfg.DesktopDirs, "/home/test/.local/share/applications") {
		t.Errorf("user desktop dir missing: %v", cfg.DesktopDirs)
	}
	if !slices.Contains(cfg.SearchRoots, "/home/test/Téléchargements") {
		t.Errorf("localized search root missing: %v", cfg.SearchRoots)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	if got := Path(); got != "/tmp/custom.yaml" {
		t.Errorf("Path() = %q, want env override", got)
	}

	t.Setenv(EnvConfigPath, "")
	if got := Path(); filepath.Base(got) != "config.yaml" {
		t.Errorf("Path() = %q, want default config.yaml", got)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("expected defaults, got MaxDepth %d", cfg.MaxDepth)
	}
}

func TestLoad_OverlaysYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `search_roots:
  - ~/Work
  - /srv/shared
file_extensions: [PDF, ".md"]
max_depth: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantRoots := []string{filepath.Join(home, "Work"), "/srv/shared"}
	if !slices.Equal(cfg.SearchRoots, wantRoots) {
		t.Errorf("SearchRoots = %v, want %v", cfg.SearchRoots, wantRoots)
	}
	if !slices.Equal(cfg.FileExtensions, []string{".pdf", ".md"}) {
		t.Errorf("FileExtensions = %v", cfg.FileExtensions)
	}
	if cfg.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.MaxDepth)
	}
	// Untouched keys keep their defaults
	if cfg.MaxResultsPerRoot != DefaultMaxResultsPerRoot {
		t.Errorf("MaxResultsPerRoot = %d, want default", cfg.MaxResultsPerRoot)
	}
	if len(cfg.DesktopDirs) != 4 {
		t.Errorf("DesktopDirs should keep defaults, got %v", cfg.DesktopDirs)
	}
}

func TestLoad_InvalidBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative depth", "max_depth: -1\n"},
		{"zero results", "max_results_per_root: 0\n"},
		{"negative workers", "workers: -2\n"},
		{"malformed yaml", "max_depth: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	cfg := Default("/home/test")
	clone := cfg.Clone()
	clone.SearchRoots[0] = "/changed"
	clone.Launch.Editors[0] = "ed"

	if cfg.SearchRoots[0] == "/changed" {
		t.Error("Clone shares SearchRoots with the original")
	}
	if cfg.Launch.Editors[0] == "ed" {
		t.Error("Clone shares Editors with the original")
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"~", "/home/u"},
		{"~/Documents", "/home/u/Documents"},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in, "/home/u"); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := map[string]string{
		"PDF":   ".pdf",
		".Docx": ".docx",
		" .sh ": ".sh",
		"":      "",
	}
	for in, want := range tests {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWorkerLimit(t *testing.T) {
	cfg := Default("/home/test")
	if n := cfg.WorkerLimit(); n < 1 || n > 16 {
		t.Errorf("WorkerLimit() = %d, want 1..16", n)
	}

	cfg.Workers = 3
	if n := cfg.WorkerLimit(); n != 3 {
		t.Errorf("WorkerLimit() = %d, want explicit 3", n)
	}
}
