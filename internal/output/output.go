// Package output writes generated files to disk under an overwrite policy.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Result describes what Save did with a file
type Result int

const (
	// Skipped means the file was left untouched
	Skipped Result = iota
	// Created means a new file was written
	Created
	// Overwritten means an existing file was replaced
	Overwritten
)

func (r Result) String() string {
	switch r {
	case Created:
		return "created"
	case Overwritten:
		return "overwritten"
	default:
		return "skipped"
	}
}

// Policy decides what happens when a target file already exists
type Policy struct {
	// AutoOverwrite replaces existing files without asking
	AutoOverwrite bool

	// PromptOverwrite asks the Confirmer before replacing a file.
	// Ignored when AutoOverwrite is set.
	PromptOverwrite bool
}

// FileSystem defines the file system operations the saver needs
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Saver writes files and remembers which ones it wrote
type Saver struct {
	filesystem FileSystem
	confirm    Confirmer
	policy     Policy
	logger     zerolog.Logger
	written    []string
}

// NewSaver creates a saver on the real file system. A nil confirm declines
// every overwrite prompt.
func NewSaver(policy Policy, confirm Confirmer, logger zerolog.Logger) *Saver {
	return newSaver(&osFileSystem{}, policy, confirm, logger)
}

func newSaver(fs FileSystem, policy Policy, confirm Confirmer, logger zerolog.Logger) *Saver {
	if confirm == nil {
		confirm = NeverConfirm{}
	}
	return &Saver{
		filesystem: fs,
		confirm:    confirm,
		policy:     policy,
		logger:     logger,
	}
}

// Save writes data to path, creating the parent directory when needed. An
// existing file is only replaced when the policy or the Confirmer allows it;
// with neither, Save returns Skipped and an error wrapping ErrExists.
func (s *Saver) Save(path string, data []byte) (Result, error) {
	result := Created

	if _, err := s.filesystem.Stat(path); err == nil {
		switch {
		case s.policy.AutoOverwrite:
			s.logger.Info().Str("path", path).Msg("overwriting")
		case s.policy.PromptOverwrite:
			ok, err := s.confirm.Confirm(path)
			if err != nil {
				return Skipped, fmt.Errorf("failed to confirm overwrite of %s: %w", path, err)
			}
			if !ok {
				s.logger.Info().Str("path", path).Msg("overwrite declined")
				return Skipped, nil
			}
		default:
			s.logger.Warn().Str("path", path).Msg("file already exists")
			return Skipped, fmt.Errorf("%w: %s", ErrExists, path)
		}
		result = Overwritten
	} else if !errors.Is(err, os.ErrNotExist) {
		return Skipped, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := s.filesystem.MkdirAll(dir, 0755); err != nil {
		return Skipped, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := s.filesystem.WriteFile(path, data, 0644); err != nil {
		return Skipped, fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.written = append(s.written, path)
	s.logger.Debug().
		Str("path", path).
		Int("size", len(data)).
		Str("result", result.String()).
		Msg("generated file")

	return result, nil
}

// Written returns the paths written so far, in order
func (s *Saver) Written() []string {
	return append([]string(nil), s.written...)
}
