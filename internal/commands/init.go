package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/okra-platform/sourcegen/internal/config"
	"github.com/okra-platform/sourcegen/internal/filetype"
)

// DefaultSettingsFile is written by init when no path is given
const DefaultSettingsFile = "sourcegen.json"

type InitOptions struct {
	// Path of the settings file; its extension picks the format
	Path string

	// Force replaces an existing settings file instead of editing it
	Force bool
}

type InitCommand struct {
	out    io.Writer
	logger zerolog.Logger
	// For testing: if set, skip prompting and save these settings
	testSettings *config.Settings
}

func NewInitCommand(out io.Writer, logger zerolog.Logger) *InitCommand {
	return &InitCommand{out: out, logger: logger}
}

func (c *Controller) Init(ctx context.Context, opts InitOptions) error {
	cmd := NewInitCommand(c.out(), c.logger("init"))
	return cmd.Run(ctx, opts)
}

func (ic *InitCommand) Run(ctx context.Context, opts InitOptions) error {
	return ic.RunWithOptions(ctx, opts)
}

// RunWithOptions edits the settings at opts.Path, starting from the existing
// file or from the defaults, and saves the result
func (ic *InitCommand) RunWithOptions(ctx context.Context, opts InitOptions, programOpts ...tea.ProgramOption) error {
	path := opts.Path
	if path == "" {
		path = DefaultSettingsFile
	}

	settings, err := ic.startingSettings(path, opts.Force)
	if err != nil {
		return err
	}

	// For testing: use provided settings instead of prompting
	if ic.testSettings != nil {
		settings = ic.testSettings
	} else {
		if err := ic.promptSettings(settings, programOpts...); err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := config.Save(path, settings); err != nil {
		return err
	}

	ic.logger.Debug().Str("path", path).Msg("saved settings")
	fmt.Fprintf(ic.out, "✅ Saved settings to %s\n", path)
	return nil
}

func (ic *InitCommand) startingSettings(path string, force bool) (*config.Settings, error) {
	if force {
		return config.Default(), nil
	}

	settings, err := config.LoadFromPath(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (ic *InitCommand) promptSettings(settings *config.Settings, opts ...tea.ProgramOption) error {
	indent := strconv.Itoa(settings.Indent)
	form := ic.createSettingsForm(settings, &indent)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return err
		}
	} else {
		if err := form.Run(); err != nil {
			return err
		}
	}

	width, err := parseIndent(indent)
	if err != nil {
		return err
	}
	settings.Indent = width
	settings.Namespace = settings.NamespaceText != ""
	settings.BaseClass = settings.BaseClassText != ""
	return nil
}

func (ic *InitCommand) createSettingsForm(settings *config.Settings, indent *string) *huh.Form {
	var kinds []huh.Option[filetype.Kind]
	for _, kind := range filetype.Kinds() {
		kinds = append(kinds, huh.NewOption(filetype.LabelFor(kind), kind))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[filetype.Kind]().
				Title("Default kind").
				Description("Used for names given without an extension").
				Options(kinds...).
				Value(&settings.Kind),

			huh.NewConfirm().
				Title("Doc comments").
				Description("Start each file with a /** @file */ block").
				Value(&settings.Comments),

			huh.NewInput().
				Title("Author").
				Value(&settings.AuthorText),

			huh.NewInput().
				Title("Copyright").
				Value(&settings.CopyrightText),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Namespace").
				Description("Namespace or package; leave empty for none").
				Value(&settings.NamespaceText),

			huh.NewInput().
				Title("Base class").
				Description("Leave empty for none").
				Value(&settings.BaseClassText),

			huh.NewConfirm().
				Title("Indent with tabs").
				Value(&settings.Tabs),

			huh.NewInput().
				Title("Indent width").
				Value(indent).
				Validate(func(s string) error {
					_, err := parseIndent(s)
					return err
				}),
		),
	)
}

func parseIndent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("indent width must be a number: %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("indent width must not be negative")
	}
	return n, nil
}
