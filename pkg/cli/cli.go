package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fedora-notofonts/notofonts/pkg/cli/config"
	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	"github.com/fedora-notofonts/notofonts/pkg/domain/types"
	"github.com/fedora-notofonts/notofonts/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Command is an entry of the command table
type Command struct {
	Name      string
	Aliases   []string
	Usage     string
	ArgsUsage string
	Flags     []cli.Flag
	Action    func(ctx context.Context, c *cli.Command, app *App) error
}

// DefaultCommands returns the command table of the notofonts CLI
func DefaultCommands() []Command {
	return []Command{
		cmdList(),
		cmdDownload(),
		cmdGenSpec(),
	}
}

// App carries configuration and dependencies shared by command actions
type App struct {
	Catalog config.Catalog
	GitHub  config.GitHub

	out          io.Writer
	logOut       io.Writer
	githubClient interfaces.GitHubClient
}

// Output returns the writer for command results
func (a *App) Output() io.Writer {
	return a.out
}

// GitHubClient returns the GitHub client, created on first use
func (a *App) GitHubClient() (interfaces.GitHubClient, error) {
	if a.githubClient != nil {
		return a.githubClient, nil
	}

	client, err := a.GitHub.NewClient()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	a.githubClient = client
	return client, nil
}

// ReleaseUseCase returns a release resolver bound to the configured catalog
func (a *App) ReleaseUseCase() (interfaces.ReleaseUseCase, error) {
	client, err := a.GitHubClient()
	if err != nil {
		return nil, err
	}
	return usecase.NewRelease(client,
		usecase.WithOrganization(a.Catalog.Organization),
		usecase.WithExcludeList(a.Catalog.Exclude),
	), nil
}

// Option configures Run
type Option func(*App)

// WithOutput sets the writer for command results
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithLogOutput sets the log destination, os.Stderr by default
func WithLogOutput(w io.Writer) Option {
	return func(a *App) {
		a.logOut = w
	}
}

// WithGitHubClient replaces the GitHub client built from configuration
func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(a *App) {
		a.githubClient = client
	}
}

// Run runs the CLI application with the given command table
func Run(ctx context.Context, args []string, commands []Command, opts ...Option) error {
	var (
		loggerCfg  config.Logger
		configPath string
		logger     *slog.Logger
	)

	app := &App{out: os.Stdout}
	for _, opt := range opts {
		opt(app)
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the TOML configuration file",
			Destination: &configPath,
			Sources:     cli.EnvVars("NOTOFONTS_CONFIG"),
		},
	}
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, app.Catalog.Flags()...)
	flags = append(flags, app.GitHub.Flags()...)

	root := &cli.Command{
		Name:    "notofonts",
		Usage:   "Resolve and fetch font releases of the notofonts organization",
		Version: types.Version,
		Flags:   flags,
		Writer:  app.out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			loggerCfg.Writer = app.logOut

			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			file, err := config.LoadFile(configPath)
			if err != nil {
				return nil, err
			}
			app.Catalog.Merge(file)
			if err := app.GitHub.Merge(file); err != nil {
				return nil, err
			}

			logger.Debug("Loaded configuration",
				slog.String("organization", app.Catalog.Organization),
				slog.Any("exclude", app.Catalog.Exclude),
				slog.Any("github", app.GitHub),
			)
			return ctx, nil
		},
	}

	for _, cmd := range commands {
		root.Commands = append(root.Commands, toCLICommand(cmd, app))
	}

	if err := root.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func toCLICommand(cmd Command, app *App) *cli.Command {
	action := cmd.Action
	return &cli.Command{
		Name:      cmd.Name,
		Aliases:   cmd.Aliases,
		Usage:     cmd.Usage,
		ArgsUsage: cmd.ArgsUsage,
		Flags:     cmd.Flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return action(ctx, c, app)
		},
	}
}
