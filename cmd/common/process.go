// Package common contains the shared conversion pipeline for command handlers
package common

import (
	"dl/bank2ledger/internal/classifier"
	"dl/bank2ledger/internal/config"
	"dl/bank2ledger/internal/ledger"
	"dl/bank2ledger/internal/logging"
	"dl/bank2ledger/internal/models"
	"dl/bank2ledger/internal/rules"
	"dl/bank2ledger/internal/store"
)

// ReadFunc reads a statement file into normalized transactions. The CSV and
// XLSX parsers both satisfy it.
type ReadFunc func(filePath string, opts models.InputOptions, logger logging.Logger) ([]models.Transaction, error)

// Convert runs the full pipeline: load and validate the rule document, read
// and sort the statement, classify each transaction in date order and write
// the resulting ledger entries.
//
// Configuration errors (schema, unresolved accounts, malformed patterns)
// abort before any transaction is processed. An unmatched transaction is
// recoverable: it is skipped with a warning and counted in the summary.
func Convert(read ReadFunc, inputFile, rulesFile, outputFile string, log logging.Logger) error {
	cfg := config.Get()

	presets := store.NewPresetStore(cfg.Presets.Directory, log)
	doc, err := rules.Load(rulesFile, presets, log)
	if err != nil {
		return err
	}

	cls, err := classifier.New(doc)
	if err != nil {
		return err
	}

	transactions, err := read(inputFile, doc.Input, log)
	if err != nil {
		return err
	}
	models.SortTransactions(transactions)

	amountPrefix := doc.Output.Amount.Prefix
	if amountPrefix == "" {
		amountPrefix = cfg.Output.AmountPrefix
	}

	entries := make([]ledger.Entry, 0, len(transactions))
	unmatched := 0
	for _, tx := range transactions {
		result := cls.Classify(tx)
		if !result.Matched {
			unmatched++
			log.WithFields(
				logging.Field{Key: logging.FieldDate, Value: tx.Date.Format("2006-01-02")},
				logging.Field{Key: logging.FieldDescription, Value: tx.Description},
			).Warn("No rule matched transaction, skipping")
			continue
		}
		entries = append(entries, ledger.Format(result.Rule, tx, amountPrefix))
	}

	if err := ledger.WriteEntriesToFile(outputFile, entries, log); err != nil {
		return err
	}

	log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
		logging.Field{Key: logging.FieldUnmatched, Value: unmatched},
	).Info("Conversion completed")
	return nil
}
