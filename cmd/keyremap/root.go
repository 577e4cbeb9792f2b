package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/joshuapare/keyremap/internal/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "keyremap",
	Short: "Rewrite keyboard shortcuts in XML keymap files",
	Long: `keyremap rewrites keyboard-shortcut bindings in XML keymaps. A replacement
table maps an old key token to a new key token plus modifiers to add; every
matching first or second keystroke is rewritten with modifiers in the
canonical order meta, control, shift, alt.

Example:
  keyremap --keymap Custom.xml --replacements replacements.json --output Custom.new.xml
  keyremap --directory keymaps/ --replacements replacements.json --output out/
  keyremap -d keymaps/ -r replacements.yaml -o out/ --dry-run --continue-on-error`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemap()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// initLogging enables the structured logger when --verbose, --log-level or
// --log-file asks for it. Logs go to stderr unless --log-file is set.
func initLogging(cmd *cobra.Command) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	enabled := verbose || logFile != "" || cmd.Flags().Changed("log-level")
	return logger.Init(logger.Options{
		Enabled: enabled,
		File:    logFile,
		Writer:  os.Stderr,
		Level:   level,
	})
}

// Styles for status marks
var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// styled renders text with s unless --no-color is set
func styled(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, styled(failStyle, "Error:")+" "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// plural returns "s" unless n is 1
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
