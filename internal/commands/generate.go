package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"

	"github.com/okra-platform/sourcegen/internal/codegen"
	"github.com/okra-platform/sourcegen/internal/codegen/guard"
	"github.com/okra-platform/sourcegen/internal/config"
	"github.com/okra-platform/sourcegen/internal/filetype"
	"github.com/okra-platform/sourcegen/internal/genconfig"
	"github.com/okra-platform/sourcegen/internal/output"
	"github.com/okra-platform/sourcegen/internal/targets"
)

// GenerateOptions contains the options of one generate run
type GenerateOptions struct {
	// Names are file names as given on the command line
	Names []string

	// Line is a free-form list of names, split like the name box of the form
	Line string

	// Kind overrides the kind of every name when set
	Kind string

	// OutDir overrides the default output directory
	OutDir string

	// Date overrides today's date on @date and @Copyright lines
	Date string

	// Seed makes include-guard digits reproducible; zero picks a random seed
	Seed uint64

	// Force overwrites existing files without asking
	Force bool

	// Yes answers every overwrite prompt with yes
	Yes bool

	// DryRun prints the generated text instead of writing files
	DryRun bool

	// Style overrides; nil leaves the settings value alone
	Author    *string
	Namespace *string
	BaseClass *string
	Indent    *int
	Spaces    bool
	NoDoc     bool
}

// Report lists what a generate run did
type Report struct {
	Written []string
	Skipped []string
}

// GenerateCommand turns names into files
type GenerateCommand struct {
	settings *config.Settings
	registry *codegen.Registry
	saver    *output.Saver
	now      func() time.Time
	out      io.Writer
	logger   zerolog.Logger
}

// NewGenerateCommand creates a generate command writing through saver
func NewGenerateCommand(settings *config.Settings, saver *output.Saver, out io.Writer, logger zerolog.Logger) *GenerateCommand {
	return &GenerateCommand{
		settings: settings,
		registry: codegen.DefaultRegistry,
		saver:    saver,
		now:      time.Now,
		out:      out,
		logger:   logger,
	}
}

// Generate runs the generate command
func (c *Controller) Generate(ctx context.Context, opts GenerateOptions) error {
	logger := c.logger("generate")

	settings, _, err := c.loadSettings(logger)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	applyOverrides(settings, opts)

	saver := output.NewSaver(policyFor(settings, opts), confirmerFor(opts), logger)
	cmd := NewGenerateCommand(settings, saver, c.out(), logger)

	report, err := cmd.Run(ctx, opts)
	if err != nil {
		return err
	}

	if !opts.DryRun {
		fmt.Fprintf(c.out(), "✅ Generated %d file(s)\n", len(report.Written))
	}
	return nil
}

// Run generates every requested file
func (gc *GenerateCommand) Run(ctx context.Context, opts GenerateOptions) (*Report, error) {
	names := targets.Parse(shellquote.Join(opts.Names...) + " " + opts.Line)
	if len(names) == 0 {
		return nil, fmt.Errorf("no file names given")
	}

	var override filetype.Kind
	if opts.Kind != "" {
		kind, err := filetype.ParseKind(opts.Kind)
		if err != nil {
			return nil, err
		}
		override = kind
	}

	outDir := gc.settings.Output.DefaultDirectory
	if gc.settings.Output.PromptSave {
		outDir = ""
	}
	if opts.OutDir != "" {
		outDir = opts.OutDir
	}

	date := opts.Date
	if date == "" {
		date = genconfig.FormatDate(gc.now())
	}

	var guards codegen.GuardSource
	if opts.Seed != 0 {
		guards = guard.NewSource(opts.Seed)
	}

	report := &Report{}
	var failures []error
	for _, target := range targets.Resolve(names, outDir) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		target = gc.resolveKind(target, override)
		if target.Kind == filetype.None {
			gc.logger.Warn().Str("path", target.Path).Msg("unknown file type, skipping")
			report.Skipped = append(report.Skipped, target.Path)
			continue
		}

		cfg := gc.settings.Generation(target.Kind, target.BaseName, date)
		files, err := gc.registry.Generate(cfg, codegen.Options{Guards: guards})
		if err != nil {
			return report, fmt.Errorf("failed to generate %s: %w", target.Path, err)
		}

		for _, file := range files {
			path := target.OutputPath(file.Extension)
			if opts.DryRun {
				fmt.Fprintf(gc.out, "==> %s <==\n%s\n", path, file.Content)
				continue
			}

			result, err := gc.saver.Save(path, file.Content)
			if err != nil {
				report.Skipped = append(report.Skipped, path)
				if errors.Is(err, output.ErrExists) {
					fmt.Fprintf(gc.out, "⚠️  %s already exists (use --force to overwrite)\n", path)
					continue
				}
				failures = append(failures, err)
				continue
			}
			if result == output.Skipped {
				report.Skipped = append(report.Skipped, path)
				continue
			}
			report.Written = append(report.Written, path)
			fmt.Fprintf(gc.out, "   %s %s\n", result, path)
		}
	}

	if len(failures) > 0 {
		return report, errors.Join(failures...)
	}
	return report, nil
}

// resolveKind applies the --kind override, then falls back to the settings
// kind for names given without an extension
func (gc *GenerateCommand) resolveKind(target targets.Target, override filetype.Kind) targets.Target {
	if override != filetype.None {
		return target.WithKind(override)
	}
	if target.Kind == filetype.None && filepath.Ext(target.Path) == "" {
		return target.WithKind(gc.settings.Kind)
	}
	return target
}

func applyOverrides(s *config.Settings, opts GenerateOptions) {
	if opts.Author != nil {
		s.Author = true
		s.AuthorText = *opts.Author
	}
	if opts.Namespace != nil {
		s.Namespace = *opts.Namespace != ""
		s.NamespaceText = *opts.Namespace
	}
	if opts.BaseClass != nil {
		s.BaseClass = *opts.BaseClass != ""
		s.BaseClassText = *opts.BaseClass
	}
	if opts.Indent != nil {
		s.Indent = *opts.Indent
	}
	if opts.Spaces {
		s.Tabs = false
	}
	if opts.NoDoc {
		s.Comments = false
	}
}

func policyFor(s *config.Settings, opts GenerateOptions) output.Policy {
	return output.Policy{
		AutoOverwrite:   s.Output.AutoOverwrite || opts.Force,
		PromptOverwrite: s.Output.PromptOverwrite,
	}
}

func confirmerFor(opts GenerateOptions) output.Confirmer {
	if opts.Yes {
		return output.AlwaysConfirm{}
	}
	return output.NewFormConfirmer()
}
