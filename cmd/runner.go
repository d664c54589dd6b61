package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/shelf/internal/models"
	"github.com/desertthunder/shelf/internal/repositories"
	"github.com/desertthunder/shelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	catalog models.Catalog
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// When Catalog is nil, commands open a [repositories.BookRepository] on the configured database path.
type RunnerOpts struct {
	Config  *shared.Config
	Catalog models.Catalog
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		catalog: opts.Catalog,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, bookCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadConfig reads the file named by the --config flag when it exists and falls back to the runner's config otherwise.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	config := r.config

	if path := cmd.String("config"); path != "" {
		loaded, err := shared.LoadConfig(path)
		switch {
		case errors.Is(err, shared.ErrMissingConfig):
			r.logger.Debug("config file not found, using defaults", "path", path)
		case err != nil:
			return nil, err
		default:
			config = loaded
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	lvl, _ := config.LogLevel()
	shared.SetLogLevel(r.logger, lvl)

	r.config = config
	return config, nil
}

// openCatalog returns the injected catalog or a repository on the configured store.
func (r *Runner) openCatalog(cmd *cli.Command) (models.Catalog, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	repo, err := repositories.NewBookRepository(config.Database.Path, r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	return repo, nil
}

func (r *Runner) write(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
