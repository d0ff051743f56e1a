package driven

import "io/fs"

// FileSystem is the minimal file access the CSV source needs. Tests supply
// an in-memory implementation to simulate modification times.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
