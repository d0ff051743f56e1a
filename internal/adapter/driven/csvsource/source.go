package csvsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

// DefaultFileName is the password table's file name in the default locations.
const DefaultFileName = "wifi-passwords.csv"

const msgUnreadable = "Unable to read password file. Please contact staff for assistance."

// Compile-time interface satisfaction check.
var _ driven.RecordSource = (*Source)(nil)

// Source is a RecordSource that picks the first existing file from a fixed
// list of candidate paths.
type Source struct {
	fs         driven.FileSystem
	candidates []string
}

// NewSource creates a Source that searches candidates in order.
func NewSource(fsys driven.FileSystem, candidates []string) *Source {
	return &Source{fs: fsys, candidates: candidates}
}

// DefaultCandidates returns the search order for the password table: the
// explicit override (when set), then public/ and the working directory, then
// public/ next to the executable.
func DefaultCandidates(override string) []string {
	var paths []string
	if override != "" {
		paths = append(paths, override)
	}
	paths = append(paths,
		filepath.Join("public", DefaultFileName),
		DefaultFileName,
	)
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "public", DefaultFileName))
	}
	return paths
}

// Candidates returns the configured search order.
func (s *Source) Candidates() []string {
	return s.candidates
}

// Resolve returns the first candidate that exists as a regular file.
func (s *Source) Resolve(ctx context.Context) (model.SourceInfo, error) {
	if err := ctx.Err(); err != nil {
		return model.SourceInfo{}, err
	}

	for _, path := range s.candidates {
		fi, err := s.fs.Stat(path)
		if err != nil || fi.IsDir() {
			continue
		}
		return model.SourceInfo{Identifier: path, ModifiedAt: fi.ModTime()}, nil
	}

	return model.SourceInfo{}, model.NewSourceError(model.ErrorStateFileNotFound, "",
		fmt.Errorf("password file not found in any of %q", s.candidates))
}

// Load reads and parses the file named by info.Identifier.
func (s *Source) Load(ctx context.Context, info model.SourceInfo) (model.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return model.ParseResult{}, err
	}

	data, err := s.fs.ReadFile(info.Identifier)
	if errors.Is(err, fs.ErrNotExist) {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateFileNotFound, "",
			fmt.Errorf("read %s: %w", info.Identifier, err))
	}
	if err != nil {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateConfigurationError, msgUnreadable,
			fmt.Errorf("read %s: %w", info.Identifier, err))
	}

	return Parse(data)
}
