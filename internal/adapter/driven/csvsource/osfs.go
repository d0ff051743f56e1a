package csvsource

import (
	"io/fs"
	"os"

	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.FileSystem = OSFileSystem{}

// OSFileSystem reads from the host filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
