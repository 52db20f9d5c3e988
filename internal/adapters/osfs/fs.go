package osfs

import (
	"io/fs"
	"os"
	"sync/atomic"

	"locator/internal/ports"
)

// FS implements ports.FileSystem on top of package os
type FS struct{}

// Ensure FS implements FileSystem
var _ ports.FileSystem = FS{}

// New returns the host filesystem
func New() FS {
	return FS{}
}

func (FS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (FS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (FS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stats is a snapshot of filesystem call counts
type Stats struct {
	Stat     int64
	ReadDir  int64
	ReadFile int64
}

// Total returns the sum of all calls
func (s Stats) Total() int64 {
	return s.Stat + s.ReadDir + s.ReadFile
}

// Counter wraps a FileSystem and counts every call. Safe for concurrent use.
type Counter struct {
	inner    ports.FileSystem
	stat     atomic.Int64
	readDir  atomic.Int64
	readFile atomic.Int64
}

// Ensure Counter implements FileSystem
var _ ports.FileSystem = (*Counter)(nil)

// NewCounter wraps inner
func NewCounter(inner ports.FileSystem) *Counter {
	return &Counter{inner: inner}
}

func (c *Counter) Stat(name string) (fs.FileInfo, error) {
	c.stat.Add(1)
	return c.inner.Stat(name)
}

func (c *Counter) ReadDir(name string) ([]fs.DirEntry, error) {
	c.readDir.Add(1)
	return c.inner.ReadDir(name)
}

func (c *Counter) ReadFile(name string) ([]byte, error) {
	c.readFile.Add(1)
	return c.inner.ReadFile(name)
}

// Stats returns the counts recorded so far
func (c *Counter) Stats() Stats {
	return Stats{
		Stat:     c.stat.Load(),
		ReadDir:  c.readDir.Load(),
		ReadFile: c.readFile.Load(),
	}
}

// Exists reports whether name can be stat-ed through fsys
func Exists(fsys ports.FileSystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsDir reports whether name is a directory (following symlinks)
func IsDir(fsys ports.FileSystem, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
