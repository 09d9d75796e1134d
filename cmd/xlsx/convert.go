// Package xlsx handles XLSX statement conversion commands
package xlsx

import (
	"dl/bank2ledger/cmd/common"
	"dl/bank2ledger/cmd/root"
	"dl/bank2ledger/internal/logging"
	"dl/bank2ledger/internal/xlsxparser"

	"github.com/spf13/cobra"
)

// Cmd represents the xlsx command
var Cmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Convert an XLSX bank statement",
	Long:  `Convert an XLSX bank statement export into double-entry ledger text using a rule document.`,
	Run:   xlsxFunc,
}

func xlsxFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("XLSX convert command called")
	root.Log.Infof("Input statement file: %s", root.SharedFlags.Input)
	root.Log.Infof("Rule document: %s", root.SharedFlags.Rules)

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	err := common.Convert(xlsxparser.ParseFile,
		root.SharedFlags.Input, root.SharedFlags.Rules, root.SharedFlags.Output, log)
	if err != nil {
		log.Fatalf("Error converting XLSX statement: %v", err)
	}
	root.Log.Info("XLSX statement conversion completed successfully!")
}
