// Package commands contains the CLI commands for the application
package commands

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okra-platform/sourcegen/internal/config"
)

type Flags struct {
	LogLevel     string
	SettingsPath string
}

type Controller struct {
	Flags *Flags

	// Out receives user facing output; nil means stdout
	Out io.Writer
}

func (c *Controller) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Controller) logger(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// loadSettings reads the settings named by --settings, or searches for a
// settings file from the working directory upwards. Without any file the
// defaults are used.
func (c *Controller) loadSettings(logger zerolog.Logger) (*config.Settings, string, error) {
	if c.Flags != nil && c.Flags.SettingsPath != "" {
		settings, err := config.LoadFromPath(c.Flags.SettingsPath)
		if err != nil {
			return nil, "", err
		}
		return settings, c.Flags.SettingsPath, nil
	}

	settings, path, err := config.LoadConfig()
	if errors.Is(err, config.ErrNotFound) {
		logger.Debug().Msg("no settings file found, using defaults")
		return config.Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	logger.Debug().Str("path", path).Msg("loaded settings")
	return settings, path, nil
}
