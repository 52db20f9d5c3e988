package ports

import "io/fs"

// FileSystem is the read-only filesystem surface used by the indexer.
// Stat follows symlinks.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}
