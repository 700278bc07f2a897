package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roach88/contacts/internal/logger"
	"github.com/roach88/contacts/internal/store"
)

const envPrefix = "CONTACTS"

// RootOptions holds global flags for all commands.
// Fields are resolved in PersistentPreRunE: flag > CONTACTS_* env > config file > default.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Database   string
	ConfigFile string
	LogLevel   string

	// TraceID correlates log lines and JSON responses for one invocation.
	TraceID string

	// NewTraceID overrides trace id generation (for testing).
	// If nil, defaults to a UUIDv7.
	NewTraceID func() string

	Logger *slog.Logger

	v *viper.Viper
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the contacts CLI.
// Run without a subcommand it opens the interactive form.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	if opts.v == nil {
		opts.v = viper.New()
	}

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Contact Manager - a local phone book",
		Long: `Contact Manager keeps (name, phone number) records in a local SQLite file.

Run without a subcommand to open the interactive form. The add, list, get,
update, delete, export, and import subcommands work on the same file for
scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(opts, cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.Database, "db", store.DefaultPath, "path to SQLite database")
	flags.StringVar(&opts.ConfigFile, "config", "", "config file path (optional)")
	flags.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	for _, key := range []string{"format", "db", "log-level"} {
		_ = opts.v.BindPFlag(key, flags.Lookup(key))
	}

	// Add subcommands
	cmd.AddCommand(NewUICommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// Execute runs the root command with os.Args and returns the process exit
// code. Errors not already reported by a command are printed to stderr.
func Execute() int {
	return execute(NewRootCommand(), os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return GetExitCode(err)
}

// resolve layers configuration and sets up logging. Called once per
// invocation before any command runs.
func (opts *RootOptions) resolve(cmd *cobra.Command) error {
	v := opts.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfg := strings.TrimSpace(opts.ConfigFile); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return WrapExitError(ExitCommandError, "failed to read config", err)
		}
	}

	opts.Format = v.GetString("format")
	opts.Database = v.GetString("db")
	opts.LogLevel = v.GetString("log-level")

	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if strings.TrimSpace(opts.Database) == "" {
		return NewExitError(ExitCommandError, "database path must not be empty")
	}

	if opts.NewTraceID == nil {
		opts.NewTraceID = func() string { return uuid.Must(uuid.NewV7()).String() }
	}
	opts.TraceID = opts.NewTraceID()

	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = opts.Format
	logCfg.Writer = cmd.ErrOrStderr()
	opts.Logger = logger.WithTrace(logger.New(logCfg), opts.TraceID)

	return nil
}

// formatter builds the output formatter for a command.
func (opts *RootOptions) formatter(out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut, // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		TraceID:   opts.TraceID,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
