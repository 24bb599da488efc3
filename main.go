package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/sourcegen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "generate every name as this kind (see `sourcegen kinds`)"},
		&cli.StringFlag{Name: "names", Usage: "free-form list of names, separated by spaces or commas"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "directory for names given without one"},
		&cli.StringFlag{Name: "date", Usage: "date for @date and @Copyright lines (MM/DD/YYYY)"},
		&cli.UintFlag{Name: "seed", Usage: "seed for include guard digits, 0 for random"},
		&cli.BoolFlag{Name: "dry-run", Usage: "print the files instead of writing them"},
		&cli.StringFlag{Name: "author", Usage: "author on the @author line"},
		&cli.StringFlag{Name: "namespace", Usage: "namespace or package, empty for none"},
		&cli.StringFlag{Name: "base", Usage: "base class, empty for none"},
		&cli.IntFlag{Name: "indent", Usage: "indent width"},
		&cli.BoolFlag{Name: "spaces", Usage: "indent with spaces instead of tabs"},
		&cli.BoolFlag{Name: "no-doc", Usage: "leave out doc comments"},
	}
}

func generateOptions(c *cli.Command) commands.GenerateOptions {
	opts := commands.GenerateOptions{
		Names:  c.Args().Slice(),
		Line:   c.String("names"),
		Kind:   c.String("kind"),
		OutDir: c.String("out"),
		Date:   c.String("date"),
		Seed:   uint64(c.Uint("seed")),
		DryRun: c.Bool("dry-run"),
		Spaces: c.Bool("spaces"),
		NoDoc:  c.Bool("no-doc"),
	}
	if c.IsSet("author") {
		author := c.String("author")
		opts.Author = &author
	}
	if c.IsSet("namespace") {
		namespace := c.String("namespace")
		opts.Namespace = &namespace
	}
	if c.IsSet("base") {
		base := c.String("base")
		opts.BaseClass = &base
	}
	if c.IsSet("indent") {
		indent := int(c.Int("indent"))
		opts.Indent = &indent
	}
	return opts
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "sourcegen",
		Usage:   "Generate boilerplate C++ and Java class files",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("SOURCEGEN_LOG_LEVEL"),
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "settings",
				Usage:   "settings file (json, yaml or toml); searched upwards from the working directory when unset",
				Sources: cli.EnvVars("SOURCEGEN_SETTINGS"),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Flags.LogLevel = c.String("log-level")
			ctrl.Flags.SettingsPath = c.String("settings")

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Aliases:   []string{"gen", "g"},
				Usage:     "Generate files for the given names",
				ArgsUsage: "NAME...",
				Flags: append(generateFlags(),
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "overwrite existing files without asking"},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "answer yes to overwrite prompts"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					opts := generateOptions(c)
					opts.Force = c.Bool("force")
					opts.Yes = c.Bool("yes")
					return ctrl.Generate(ctx, opts)
				},
			},
			{
				Name:      "init",
				Usage:     "Create or edit a settings file",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "start from the defaults instead of the existing file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx, commands.InitOptions{
						Path:  c.Args().First(),
						Force: c.Bool("force"),
					})
				},
			},
			{
				Name:      "watch",
				Usage:     "Regenerate the given names whenever the settings file changes",
				ArgsUsage: "NAME...",
				Flags:     generateFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx, commands.WatchOptions{Generate: generateOptions(c)})
				},
			},
			{
				Name:  "kinds",
				Usage: "List the file kinds that can be generated",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Kinds()
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := app.Run(ctx, os.Args)
	stop()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to run sourcegen")
	}
}
