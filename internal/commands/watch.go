package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/okra-platform/sourcegen/internal/config"
	"github.com/okra-platform/sourcegen/internal/output"
	"github.com/okra-platform/sourcegen/internal/watch"
)

type WatchOptions struct {
	// SettingsPath is the file to watch; empty falls back to --settings or
	// the nearest settings file
	SettingsPath string

	Generate GenerateOptions
}

// WatchCommand regenerates its names whenever the settings file changes
type WatchCommand struct {
	settingsPath string
	opts         GenerateOptions
	out          io.Writer
	logger       zerolog.Logger

	// regenerations are serialized; a save can fire several events
	mu sync.Mutex
}

func NewWatchCommand(settingsPath string, opts GenerateOptions, out io.Writer, logger zerolog.Logger) *WatchCommand {
	return &WatchCommand{
		settingsPath: settingsPath,
		opts:         opts,
		out:          out,
		logger:       logger,
	}
}

func (c *Controller) Watch(ctx context.Context, opts WatchOptions) error {
	logger := c.logger("watch")

	path := opts.SettingsPath
	if path == "" && c.Flags != nil {
		path = c.Flags.SettingsPath
	}
	if path == "" {
		_, found, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to find settings to watch: %w", err)
		}
		path = found
	}

	cmd := NewWatchCommand(path, opts.Generate, c.out(), logger)
	return cmd.Run(ctx)
}

// Run generates once, then again on every change until ctx is cancelled
func (wc *WatchCommand) Run(ctx context.Context) error {
	if _, err := wc.Regenerate(ctx); err != nil {
		return err
	}

	// Watch only the settings file itself inside its directory
	patterns := []string{filepath.Base(wc.settingsPath)}
	watcher, err := watch.NewFileWatcher(patterns, nil, func(path string, op fsnotify.Op) {
		if !op.Has(fsnotify.Write) && !op.Has(fsnotify.Create) {
			return
		}
		wc.logger.Info().Str("path", path).Msg("settings changed, regenerating")
		if _, err := wc.Regenerate(ctx); err != nil {
			wc.logger.Error().Err(err).Msg("regeneration failed")
		}
	}, wc.logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddFile(wc.settingsPath); err != nil {
		return err
	}

	fmt.Fprintf(wc.out, "👀 Watching %s (Ctrl+C to stop)\n", wc.settingsPath)

	if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Regenerate reloads the settings and writes every name again, replacing
// the previous output
func (wc *WatchCommand) Regenerate(ctx context.Context) (*Report, error) {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	settings, err := config.LoadFromPath(wc.settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	applyOverrides(settings, wc.opts)

	saver := output.NewSaver(output.Policy{AutoOverwrite: true}, nil, wc.logger)
	return NewGenerateCommand(settings, saver, wc.out, wc.logger).Run(ctx, wc.opts)
}
