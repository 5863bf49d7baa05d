// Package cli implements the tabula command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tabula/internal/logging"
	"github.com/mesh-intelligence/tabula/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errUsage marks invalid flag combinations.
var errUsage = errors.New("usage")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	seqURL    string
	jsonMode  bool
}

// app is the state shared by one command invocation.
type app struct {
	flags    rootFlags
	cfg      Config
	logger   *slog.Logger
	closeLog func()
	root     *cobra.Command
}

// NewRootCmd creates the top-level "tabula" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newApp().root
}

func newApp() *app {
	a := &app{cfg: DefaultConfig(), logger: slog.New(slog.DiscardHandler), closeLog: func() {}}

	root := &cobra.Command{
		Use:   "tabula",
		Short: "Inspect and transform typed data columns",
		Long: "Tabula loads one column from a CSV file, a JSONL file or a SQLite query\n" +
			"as a typed column and prints it, transforms it, summarises it or\n" +
			"computes rolling-window aggregates over it.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $TABULA_CONFIG_DIR or the platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	root.PersistentFlags().StringVar(&a.flags.seqURL, "seq-url", "", "Seq server URL for structured logs (overrides config)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newTypesCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newSummaryCmd(a))
	root.AddCommand(newRollingCmd(a))

	a.root = root
	return a
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.seqURL != "" {
		cfg.SeqURL = a.flags.seqURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, closeLog, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		SeqURL: cfg.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.logger = logger.With("command", cmd.Name())
	a.closeLog = closeLog
	a.logger.Debug("configuration loaded", "config_dir", dir, "default_type", cfg.DefaultType)
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(newApp().run(os.Args[1:]))
}

// run executes the root command and returns the process exit code. The log
// sink is flushed whether or not the command succeeded.
func (a *app) run(args []string) int {
	defer a.finish()
	a.root.SetArgs(args)
	if err := a.root.Execute(); err != nil {
		a.logger.Debug("command failed", "err", err)
		fmt.Fprintln(a.root.ErrOrStderr(), "tabula:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// finish flushes and closes the log sink once.
func (a *app) finish() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

// exitCode maps file system failures to exitSysError and every other error,
// bad input of any kind, to exitUserError.
func exitCode(err error) int {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && !errors.Is(err, fs.ErrNotExist) {
		return exitSysError
	}
	return exitUserError
}
