// Package cli holds the cobra commands behind the checkboxlist binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-checkboxlist/internal/logging"
	"github.com/goliatone/go-checkboxlist/pkg/definitions"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/tui"
)

const (
	envPrefix      = "CHECKBOXLIST"
	configFileName = ".checkboxlist"
)

// app carries the state shared by all subcommands of one root command.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
	logger   *slog.Logger
	logOut   io.Writer
	driver   tui.PromptDriver
	serve    func(ctx context.Context, addr string, handler http.Handler) error
}

// Option customises the root command, mostly for tests.
type Option func(*app)

// WithLogOutput redirects log records. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(a *app) {
		if w != nil {
			a.logOut = w
		}
	}
}

// WithPromptDriver replaces the survey prompts used by the pick command.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

// WithServeFunc replaces the HTTP listener used by the serve command.
func WithServeFunc(fn func(ctx context.Context, addr string, handler http.Handler) error) Option {
	return func(a *app) {
		if fn != nil {
			a.serve = fn
		}
	}
}

// NewRootCommand builds the checkboxlist command tree.
func NewRootCommand(options ...Option) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logOut: os.Stderr,
		serve:  listenAndServe,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	root := &cobra.Command{
		Use:   "checkboxlist",
		Short: "Render checkbox lists from definition files",
		Long: `checkboxlist renders groups of HTML checkboxes from JSON or YAML list
definitions. Lists can be printed, served as HTML fragments, or picked
interactively in the terminal.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.checkboxlist.yaml or $HOME/.checkboxlist.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(
		a.newListCommand(),
		a.newRenderCommand(),
		a.newServeCommand(),
		a.newPickCommand(),
		a.newLintCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(); err != nil {
		return err
	}
	if err := a.bindFlags(cmd); err != nil {
		return err
	}

	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.New(a.logOut, level)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", slog.String("path", used))
	}
	return nil
}

func (a *app) loadStore(ctx context.Context, dir string) (*definitions.Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("--definitions is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("definitions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("definitions directory: %s is not a directory", dir)
	}

	store, err := definitions.LoadFS(ctx, os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	a.log().Debug("definitions loaded", slog.String("dir", dir), slog.Int("lists", len(store.IDs())))
	return store, nil
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

func (a *app) commandContext(cmd *cobra.Command, name string) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.ComponentCtx(ctx, name)
}
