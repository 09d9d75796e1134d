// Package root contains the root command for the application
package root

import (
	"dl/bank2ledger/internal/config"
	"dl/bank2ledger/internal/csvparser"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Rules  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank2ledger",
		Short: "A CLI tool to convert bank statement exports into double-entry ledger text.",
		Long: `bank2ledger converts tabular bank statement exports (CSV, XLSX) into
double-entry bookkeeping entries using an ordered, pattern-based rule set.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank2ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				csvparser.SetDelimiter([]rune(delim)[0])
			} else if d := config.Get().CSV.Delimiter; d != "" {
				csvparser.SetDelimiter([]rune(d)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Rules, "rules", "r", "", "Rule document (YAML)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output ledger file (stdout if empty)")
}
