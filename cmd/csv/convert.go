// Package csv handles CSV statement conversion commands
package csv

import (
	"dl/bank2ledger/cmd/common"
	"dl/bank2ledger/cmd/root"
	"dl/bank2ledger/internal/csvparser"
	"dl/bank2ledger/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the csv command
var Cmd = &cobra.Command{
	Use:   "csv",
	Short: "Convert a CSV bank statement",
	Long:  `Convert a CSV bank statement export into double-entry ledger text using a rule document.`,
	Run:   csvFunc,
}

func csvFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("CSV convert command called")
	root.Log.Infof("Input statement file: %s", root.SharedFlags.Input)
	root.Log.Infof("Rule document: %s", root.SharedFlags.Rules)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	err := common.Convert(csvparser.ParseFile,
		root.SharedFlags.Input, root.SharedFlags.Rules, root.SharedFlags.Output, log)
	if err != nil {
		log.Fatalf("Error converting CSV statement: %v", err)
	}
	root.Log.Info("CSV statement conversion completed successfully!")
}
