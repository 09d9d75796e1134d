package ledger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dl/bank2ledger/internal/logging"
)

// WriteEntries writes ledger records to w, one blank line between records.
func WriteEntries(w io.Writer, entries []Entry) error {
	for i, entry := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("error writing ledger output: %w", err)
			}
		}
		if _, err := io.WriteString(w, entry.String()+"\n"); err != nil {
			return fmt.Errorf("error writing ledger output: %w", err)
		}
	}
	return nil
}

// WriteEntriesToFile writes ledger records to a file, creating parent
// directories as needed. An empty path writes to standard output.
func WriteEntriesToFile(path string, entries []Entry, logger logging.Logger) error {
	if path == "" {
		return WriteEntries(os.Stdout, entries)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close output file")
		}
	}()

	if err := WriteEntries(file, entries); err != nil {
		return err
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	).Info("Wrote ledger entries")
	return nil
}
