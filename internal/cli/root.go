// Package cli implements the themer command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/themer"
)

var (
	logLevel       string
	noColor        bool
	jsonOutput     bool
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "themer",
	Short: "Resolve and inspect TOML themes",
	Long:  "themer parses TOML theme files, resolves color variables and expressions, and renders the result for inspection.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Explicit flags beat THEMER_* environment values.
		flags := cmd.Root().PersistentFlags()
		if !flags.Changed("log-level") && viper.IsSet("log_level") {
			logLevel = viper.GetString("log_level")
		}
		if !flags.Changed("no-color") && viper.GetBool("no_color") {
			noColor = true
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt or launch full-screen UI")

	viper.SetEnvPrefix("THEMER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command and reports failures on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var preflight *PreflightError
		if errors.As(err, &preflight) {
			fmt.Fprintln(os.Stderr, preflight.Message)
			if preflight.Hint != "" {
				fmt.Fprintf(os.Stderr, "hint: %s\n", preflight.Hint)
			}
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// PreflightError signals that a command cannot run in the current
// environment, with a hint for the operator.
type PreflightError struct {
	Message string
	Hint    string
}

func (e *PreflightError) Error() string { return e.Message }

// IsJSONOutput reports whether commands should emit JSON instead of tables.
func IsJSONOutput() bool { return jsonOutput }

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func loadTheme(path string) (*themer.Theme, error) {
	return themer.FromFile(path, themer.WithLogger(newLogger()))
}
