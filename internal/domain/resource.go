package domain

import (
	"fmt"
	"time"
)

// ResourceKind identifies which variant a Resource carries
type ResourceKind int

const (
	KindUnknown ResourceKind = iota
	KindApplication
	KindFile
)

// String returns the display name of the kind
func (k ResourceKind) String() string {
	switch k {
	case KindApplication:
		return "Application"
	case KindFile:
		return "File"
	default:
		return "Unknown"
	}
}

// Application is an installed application parsed from a desktop descriptor
type Application struct {
	Name     string // e.g., "Firefox"
	Exec     string // Command line with field codes stripped
	IconPath string // Absolute icon path, empty when unresolved
}

// IdentityKey is the deduplication key for applications
func (a Application) IdentityKey() string {
	return a.Name + "|" + a.Exec
}

// File is a user file discovered under one of the search roots
type File struct {
	Name      string    // Base name, e.g. "report.pdf"
	Path      string    // Absolute path
	Extension string    // Lower-cased with leading dot, e.g. ".pdf"
	Size      int64     // Size in bytes
	ModTime   time.Time // Last modification time
}

// Resource is a launchable search hit: exactly one of App or File is set,
// matching Kind.
type Resource struct {
	Kind ResourceKind
	App  *Application
	File *File
}

// ApplicationResource wraps an application as a Resource
func ApplicationResource(app Application) Resource {
	return Resource{Kind: KindApplication, App: &app}
}

// FileResource wraps a file as a Resource
func FileResource(f File) Resource {
	return Resource{Kind: KindFile, File: &f}
}

// Name returns the display name of the resource
func (r Resource) Name() string {
	switch {
	case r.Kind == KindApplication && r.App != nil:
		return r.App.Name
	case r.Kind == KindFile && r.File != nil:
		return r.File.Name
	}
	return ""
}

// Target returns the exec command for applications and the path for files
func (r Resource) Target() string {
	switch {
	case r.Kind == KindApplication && r.App != nil:
		return r.App.Exec
	case r.Kind == KindFile && r.File != nil:
		return r.File.Path
	}
	return ""
}

func (r Resource) String() string {
	return fmt.Sprintf("[%s] %s (%s)", r.Kind, r.Name(), r.Target())
}

// SearchResult is the merged output of one query, tagged with the sequence
// number it was issued under.
type SearchResult struct {
	Seq       uint64
	Query     string
	Resources []Resource
}

// Applications returns the application hits, in result order
func (s SearchResult) Applications() []Application {
	var apps []Application
	for _, r := range s.Resources {
		if r.Kind == KindApplication && r.App != nil {
			apps = append(apps, *r.App)
		}
	}
	return apps
}

// Files returns the file hits, in result order
func (s SearchResult) Files() []File {
	var files []File
	for _, r := range s.Resources {
		if r.Kind == KindFile && r.File != nil {
			files = append(files, *r.File)
		}
	}
	return files
}
