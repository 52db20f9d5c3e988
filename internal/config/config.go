package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the location of the YAML config file
const EnvConfigPath = "LOCATOR_CONFIG"

const (
	DefaultMaxDepth          = 4
	DefaultMaxResultsPerRoot = 500
)

// Config holds the directory lists, extension lists and walk bounds used by
// the indexer. It is loaded once at startup and treated as read-only.
type Config struct {
	DesktopDirs       []string `yaml:"desktop_dirs"`
	IconDirs          []string `yaml:"icon_dirs"`
	IconExtensions    []string `yaml:"icon_extensions"`
	IconSizeDirs      []string `yaml:"icon_size_dirs"`
	SearchRoots       []string `yaml:"search_roots"`
	FileExtensions    []string `yaml:"file_extensions"`
	MaxDepth          int      `yaml:"max_depth"`
	MaxResultsPerRoot int      `yaml:"max_results_per_root"`
	Workers           int      `yaml:"workers"` // 0 = derive from CPU count

	Launch LaunchConfig `yaml:"launch"`
}

// LaunchConfig holds the candidate programs used to open files
type LaunchConfig struct {
	JavaRuntime  string   `yaml:"java_runtime"`
	ImageViewers []string `yaml:"image_viewers"`
	Editors      []string `yaml:"editors"`
}

// Default returns the built-in configuration for the given home directory
func Default(home string) *Config {
	return &Config{
		DesktopDirs: []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
			"/var/lib/snapd/desktop/applications",
			filepath.Join(home, ".local/share/applications"),
		},
		IconDirs: []string{
			"/usr/share/icons",
			"/usr/share/pixmaps",
			"/usr/local/share/icons",
			filepath.Join(home, ".local/share/icons"),
			"/var/lib/snapd/desktop/icons",
		},
		IconExtensions: []string{".png", ".svg", ".xpm", ".ico"},
		IconSizeDirs: []string{
			"scalable",
			"48x48",
			"64x64",
			"128x128",
			"256x256",
			"32x32",
			"16x16",
		},
		SearchRoots: []string{
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Pictures"),
			filepath.Join(home, "Téléchargements"),
			filepath.Join(home, "Bureau"),
			filepath.Join(home, "Images"),
		},
		FileExtensions: []string{
			".jar", ".pdf", ".doc", ".docx", ".txt", ".csv",
			".xls", ".xlsx", ".ppt", ".pptx",
			".jpg", ".jpeg", ".png",
			".sh", ".py", ".js", ".html", ".css",
		},
		MaxDepth:          DefaultMaxDepth,
		MaxResultsPerRoot: DefaultMaxResultsPerRoot,
		Launch: LaunchConfig{
			JavaRuntime:  "java",
			ImageViewers: []string{"eog", "ristretto", "gwenview", "feh"},
			Editors:      []string{"code", "gedit", "kate", "mousepad", "xed"},
		},
	}
}

// Path returns the config file location from LOCATOR_CONFIG,
// falling back to ~/.config/locator/config.yaml.
func Path() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "locator", "config.yaml")
}

// Load reads the YAML file at path on top of the defaults. A missing file
// yields the defaults unchanged.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	cfg := Default(home)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.expand(home)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects bounds that would make every walk empty
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MaxResultsPerRoot <= 0 {
		return fmt.Errorf("max_results_per_root must be positive, got %d", c.MaxResultsPerRoot)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// WorkerLimit is the concurrency ceiling for filesystem fan-out. IO-bound,
// so twice the CPU count, capped at 16 unless set explicitly.
func (c *Config) WorkerLimit() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return min(runtime.NumCPU()*2, 16)
}

// Clone returns a deep copy so components can own their lists
func (c *Config) Clone() *Config {
	out := *c
	out.DesktopDirs = slices.Clone(c.DesktopDirs)
	out.IconDirs = slices.Clone(c.IconDirs)
	out.IconExtensions = slices.Clone(c.IconExtensions)
	out.IconSizeDirs = slices.Clone(c.IconSizeDirs)
	out.SearchRoots = slices.Clone(c.SearchRoots)
	out.FileExtensions = slices.Clone(c.FileExtensions)
	out.Launch.ImageViewers = slices.Clone(c.Launch.ImageViewers)
	out.Launch.Editors = slices.Clone(c.Launch.Editors)
	return &out
}

// expand resolves ~ in every directory list and normalizes extensions
func (c *Config) expand(home string) {
	for _, dirs := range [][]string{c.DesktopDirs, c.IconDirs, c.SearchRoots} {
		for i, d := range dirs {
			dirs[i] = ExpandHome(d, home)
		}
	}
	for _, exts := range [][]string{c.IconExtensions, c.FileExtensions} {
		for i, e := range exts {
			exts[i] = NormalizeExtension(e)
		}
	}
}

// ExpandHome expands a leading ~ to home
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// NormalizeExtension lower-cases ext and ensures a leading dot
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
