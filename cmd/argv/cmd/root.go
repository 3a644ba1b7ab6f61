package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/argv/foundation/core/error"
	"github.com/msto63/argv/foundation/core/errors"
	mdwlog "github.com/msto63/argv/foundation/core/log"
)

var (
	logLevel  string
	logFormat string
	logFile   string
	verbose   bool

	logger  = mdwlog.Discard()
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "argv",
	Short: "argv - command line argument classifier",
	Long: `argv splits a list of command line tokens into parameters, long
options and short flags, attaching values to the identifiers listed as
captures.

Examples:
  argv classify -c output -- build --output bin/app -v
  argv classify --line "tar -xzf archive.tgz" -c f
  argv explore --profile argv.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(cmd.ErrOrStderr())
	},
}

// Execute runs the root command
func Execute() error {
	defer closeLogger()

	err := rootCmd.Execute()
	if err != nil {
		logger.Debug("command failed", mdwlog.Err(err), mdwlog.Fields{
			"code":      mdwerror.GetCode(err).String(),
			"module":    errors.ExtractModule(err),
			"operation": errors.ExtractOperation(err),
		})
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (json, text, console, logfmt)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write log entries to a rotated file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level=debug")
}

func setupLogger(stderr io.Writer) error {
	level, err := mdwlog.ParseLevel(logLevel)
	if err != nil {
		return errors.InvalidInput(errors.ModuleCLI, "log_level", logLevel, "trace, debug, info, warn, error or off")
	}
	if verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(logFormat)
	if err != nil {
		return errors.InvalidInput(errors.ModuleCLI, "log_format", logFormat, "json, text, console or logfmt")
	}

	output := stderr
	if logFile != "" {
		sink := mdwlog.NewRotatingWriter(logFile, mdwlog.DefaultRotation())
		logSink = sink
		output = mdwlog.Tee(stderr, sink)
	}

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "argv",
	}).WithRequestID(uuid.NewString())

	logger.Debug("logger ready", mdwlog.Fields{
		"level":  level.String(),
		"format": format.String(),
		"file":   logFile,
	})
	return nil
}

func closeLogger() {
	if logSink != nil {
		_ = logSink.Close()
		logSink = nil
	}
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

func printError(w io.Writer, err error) {
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)
		return
	}
	fmt.Fprintf(w, "%s %v [%s]\n", errorStyle.Render("Error:"), err, code)
}
