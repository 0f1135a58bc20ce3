package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winarea/internal/config"
	"github.com/Norgate-AV/winarea/internal/interfaces"
	"github.com/Norgate-AV/winarea/internal/logger"
	"github.com/Norgate-AV/winarea/internal/resolver"
	"github.com/Norgate-AV/winarea/internal/version"
)

// Injectable for testing
var (
	newBackend = platformBackend
	newLogger  = func(opts logger.LoggerOptions) (logger.LoggerInterface, error) {
		return logger.NewLogger(opts)
	}
)

// RootCmd is the root command for the winarea CLI application.
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "winarea",
		Short: "winarea - Inspect and set the visible area of Windows windows",
		Long: `winarea reports and changes the area a window visibly occupies on screen.

The rectangle Windows reports includes an invisible resize border, is larger
than the screen for maximised windows and ignores custom window regions.
winarea corrects for all three so that positions line up with what you see.`,
		Version:      version.GetVersion(),
		Args:         cobra.NoArgs,
		RunE:         runRoot,
		SilenceUsage: true, // Don't show usage on runtime errors
	}

	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	root.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	root.PersistentFlags().StringP("config", "c", "", "config file (default $"+config.EnvConfigPath+" or <user config dir>/winarea/config.yaml)")
	root.PersistentFlags().StringP("output", "o", OutputText, "output format: text or yaml")

	root.AddCommand(
		newResolveCmd(),
		newListCmd(),
		newGetCmd(),
		newSetCmd(),
		newEdgeCmd(),
		newClampCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	return root
}

// runRoot handles --logs and otherwise shows help
func runRoot(cmd *cobra.Command, _ []string) error {
	cfg := NewConfigFromFlags(cmd)
	if !cfg.ShowLogs {
		return cmd.Help()
	}

	file, _, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	opts := file.LoggerOptions(cfg.Verbose)
	if err := logger.PrintLogFile(cmd.OutOrStdout(), opts); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("log file does not exist: %s", logger.GetLogPath(opts))
		}

		return err
	}

	return nil
}

// app is the state shared by one command invocation
type app struct {
	cfg   *Config
	file  *config.Config
	rules []resolver.BorderlessRule
	log   logger.LoggerInterface
	out   *printer
}

// loadConfig reads the config file selected by the flags and environment
func loadConfig(cfg *Config) (*config.Config, string, error) {
	path, explicit, err := config.ResolvePath(cfg.ConfigPath)
	if err != nil {
		return nil, "", err
	}

	file, err := config.Load(path, explicit)
	if err != nil {
		return nil, path, err
	}

	return file, path, nil
}

// initializeApp validates flags, loads the config file and starts the logger
func initializeApp(cmd *cobra.Command) (*app, error) {
	cfg := NewConfigFromFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	file, path, err := loadConfig(cfg)
	if err != nil {
		return nil, err
	}

	rules, err := file.Rules()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(file.LoggerOptions(cfg.Verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	log.Debug("Starting winarea",
		slog.String("command", cmd.Name()),
		slog.Any("args", os.Args[1:]),
		slog.String("config", path),
		slog.Int("borderlessRules", len(rules)),
	)

	return &app{
		cfg:   cfg,
		file:  file,
		rules: rules,
		log:   log,
		out:   newPrinter(cmd.OutOrStdout(), cfg.Output),
	}, nil
}

// withApp wraps a command body with app setup, panic logging and cleanup
func withApp(run func(a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := initializeApp(cmd)
		if err != nil {
			return err
		}

		defer a.log.Close()
		defer a.out.Close()

		defer func() {
			if r := recover(); r != nil {
				a.log.Error("PANIC RECOVERED",
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)
				err = fmt.Errorf("panic: %v (see %s)", r, a.log.GetLogPath())
			}
		}()

		return run(a, cmd, args)
	}
}

// desktop opens the platform backend
func (a *app) desktop() (interfaces.Desktop, error) {
	d, err := newBackend(a.log)
	if err != nil {
		a.log.Debug("No desktop backend", slog.Any("error", err))
		return nil, err
	}

	return d, nil
}
