// Package cli implements the passmeter command line.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vaultpass/passmeter-go/internal/config"
	"github.com/vaultpass/passmeter-go/internal/crypto"
	"github.com/vaultpass/passmeter-go/internal/logger"
)

// ErrBelowMinimum is returned by analyze when --min-strength is not met.
var ErrBelowMinimum = errors.New("password below minimum strength")

// App carries the dependencies shared by every command.
type App struct {
	Generator  *crypto.Generator
	LoadConfig func() (config.Config, error)
	// IsTerminal reports whether stdin is an interactive terminal.
	IsTerminal func() bool
	// ReadPassword reads a line from the terminal without echo.
	ReadPassword func() ([]byte, error)
	// Logger, when set, replaces the logger built from config.
	Logger *zap.Logger

	cfg config.Config
	log *zap.Logger
}

// NewApp wires the production dependencies.
func NewApp() *App {
	fd := int(os.Stdin.Fd())
	return &App{
		Generator:    crypto.NewGenerator(nil),
		LoadConfig:   func() (config.Config, error) { return config.Load() },
		IsTerminal:   func() bool { return term.IsTerminal(fd) },
		ReadPassword: func() ([]byte, error) { return term.ReadPassword(fd) },
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand(app *App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "passmeter",
		Short:        "Generate passwords and estimate how long they resist brute force",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log := app.Logger
			if log == nil {
				if log, err = logger.New(cfg.Env, cfg.LogLevel); err != nil {
					return errors.Wrap(err, "create logger")
				}
			}
			app.cfg = cfg
			app.log = log
			cmd.SetContext(logger.WithLogger(cmd.Context(), log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCommand(app),
		newAnalyzeCommand(app),
		newTokenCommand(app),
	)

	return root
}
