// Package cli implements the cobra-based CLI commands for cardinfo.
//
// Each subcommand (lookup, parse, list) is defined in its own file within
// this package. This file defines the root command, which also runs an
// interactive lookup when invoked without a subcommand, and the shared
// plumbing for global flags, the diagnostic logger and the card directory.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mmr-tortoise/cardinfo/internal/directory"
	"github.com/mmr-tortoise/cardinfo/internal/logging"
	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// globalFlags holds the values of the root command's persistent flags.
type globalFlags struct {
	// jsonOutput switches all command output to JSON.
	jsonOutput bool

	// verbose lowers the diagnostic log level to debug.
	verbose bool

	// logFormat is the diagnostic log encoding: console or json.
	logFormat string

	// directoryPath optionally names a YAML/JSONC card directory file.
	// When empty, the built-in directory is used.
	directoryPath string
}

// app is the state shared by all commands of one root command instance.
// It is created by NewRootCommand and filled in by the root command's
// PersistentPreRunE once flags are parsed.
type app struct {
	flags globalFlags

	// logger is the diagnostic sink. Preset by WithLogger or built from
	// flags in setup.
	logger *zap.Logger

	// dir is the card directory. Preset by WithDirectory or resolved from
	// flags in setup.
	dir       directory.Directory
	dirPreset bool

	// invocation identifies this process run in every diagnostic entry.
	invocation string
}

// Option customizes the root command. Options exist mainly so tests can
// inject an observed logger and a fixed directory.
type Option func(*app)

// WithLogger makes the commands log to logger instead of building one
// from the --verbose and --log-format flags.
func WithLogger(logger *zap.Logger) Option {
	return func(a *app) { a.logger = logger }
}

// WithDirectory makes the commands resolve names against dir and ignore
// the --directory flag.
func WithDirectory(dir directory.Directory) Option {
	return func(a *app) {
		a.dir = dir
		a.dirPreset = true
	}
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Run without a subcommand, it prompts for a name on stdin and performs a
// lookup, which is the same as "cardinfo lookup".
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{invocation: uuid.NewString()}
	for _, opt := range opts {
		opt(a)
	}

	rootCmd := &cobra.Command{
		Use:   "cardinfo",
		Short: "Look up and parse stored card strings",
		Long: `cardinfo resolves a name against a directory of raw card strings
("number month year cvv") and parses the match into a structured record.

Malformed input is reported with a message you can act on. Internal
failures show a generic notice; the full detail goes to the diagnostic
log on stderr.`,

		Args: cobra.NoArgs,

		// Errors are rendered by the commands themselves (user message on
		// stdout, diagnostic entry on stderr) or by Run.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLookup(cmd, "", false)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.flags.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug diagnostics")
	rootCmd.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", string(logging.FormatConsole),
		"Diagnostic log format: console, json")
	rootCmd.PersistentFlags().StringVar(&a.flags.directoryPath, "directory", "",
		"Load the card directory from a .yaml/.yml/.json/.jsonc file")

	rootCmd.AddCommand(newLookupCommand(a))
	rootCmd.AddCommand(newParseCommand(a))
	rootCmd.AddCommand(newListCommand(a))

	return rootCmd
}

// setup builds the logger and resolves the card directory once flags have
// been parsed. A directory that cannot be loaded is a reported failure.
func (a *app) setup(cmd *cobra.Command) error {
	if a.logger == nil {
		format, err := logging.ParseFormat(a.flags.logFormat)
		if err != nil {
			return err
		}
		logger, err := logging.New(logging.Config{Verbose: a.flags.verbose, Format: format})
		if err != nil {
			return err
		}
		a.logger = logger
	}
	a.logger = a.logger.With(zap.String("invocation", a.invocation))

	if a.dirPreset {
		return nil
	}
	if a.flags.directoryPath == "" {
		a.dir = directory.Default()
		return nil
	}

	dir, err := directory.Load(a.flags.directoryPath)
	if err != nil {
		return a.fail(cmd, err, zap.String("directory", a.flags.directoryPath))
	}
	a.logger.Debug("loaded card directory",
		zap.String("path", a.flags.directoryPath),
		zap.Int("entries", dir.Len()))
	a.dir = dir
	return nil
}

// sync flushes buffered diagnostic entries. Sync on a console fd commonly
// returns EINVAL, so the result is ignored.
func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// reportedError marks an error whose user message and diagnostic entry
// have already been written. Run only maps it to an exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// fail is the outermost error boundary for card failures. It sends the
// full diagnostic to the log sink, prints only the user-facing message,
// and returns the error marked as reported.
func (a *app) fail(cmd *cobra.Command, err error, fields ...zap.Field) error {
	logging.ReportFailure(a.logger, err, fields...)
	a.sync()

	printFailure(cmd.OutOrStdout(), a.flags.jsonOutput, err)
	return &reportedError{err: err}
}

// Run executes the root command and returns the process exit code.
//
// Failures already rendered by a command are only mapped to their exit
// code. Anything else (unknown flags, bad arguments, logger setup) is
// printed to stderr as "Error: <message>" and exits with
// model.ExitGeneralError.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var reported *reportedError
	if errors.As(err, &reported) {
		return model.KindOf(reported.err).ExitCode()
	}

	printError(rootCmd.ErrOrStderr(), err)
	return model.ExitGeneralError
}

// Execute runs the root command and exits the process with the code
// returned by Run. This is the entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(int(Run(rootCmd)))
}
