// Package csvparser reads bank statement CSV exports into transactions.
package csvparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"dl/bank2ledger/internal/common"
	"dl/bank2ledger/internal/logging"
	"dl/bank2ledger/internal/models"

	"github.com/gocarina/gocsv"
)

var delimiter rune = ','

// SetDelimiter sets the CSV field delimiter, ',' by default.
func SetDelimiter(d rune) {
	delimiter = d
}

// Parse reads statement rows from r and returns normalized transactions.
// Column names come from the document's input options, falling back to the
// defaults. Rows that cannot be converted are skipped with a warning.
func Parse(r io.Reader, opts models.InputOptions, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delimiter
		return cr
	})
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, fmt.Errorf("error reading statement CSV: %w", err)
	}

	headers := models.ResolveHeaders(opts.CSV.Header)
	if len(rows) > 0 {
		// a statement whose header row lacks the expected columns would
		// otherwise skip every row and produce empty output
		for _, key := range []string{models.HeaderDate, models.HeaderDescription} {
			if _, ok := rows[0][headers[key]]; !ok {
				return nil, fmt.Errorf("statement CSV has no '%s' column", headers[key])
			}
		}
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row[headers[models.HeaderDate]]) == "" {
			continue
		}
		tx, err := common.RowToTransaction(row, headers)
		if err != nil {
			logger.WithError(err).Warn("Failed to convert row to transaction, skipping")
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.WithField(logging.FieldCount, len(transactions)).
		Info("Parsed statement CSV")
	return transactions, nil
}

// ParseFile reads a statement CSV file and returns normalized transactions.
func ParseFile(filePath string, opts models.InputOptions, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing statement CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening statement CSV: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, opts, logger)
}
