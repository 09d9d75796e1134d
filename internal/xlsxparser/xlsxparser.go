// Package xlsxparser reads bank statement XLSX exports into transactions.
package xlsxparser

import (
	"fmt"
	"strings"

	"dl/bank2ledger/internal/common"
	"dl/bank2ledger/internal/logging"
	"dl/bank2ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

// ParseFile reads the first sheet of a statement XLSX file and returns
// normalized transactions. The document's input options select the header
// row (1-based first_row, default 1) and override column names.
func ParseFile(filePath string, opts models.InputOptions, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing statement XLSX file")

	file, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening statement XLSX: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("statement XLSX has no sheets")
	}
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet '%s': %w", sheet, err)
	}

	firstRow := opts.XLS.Sheet.FirstRow
	if firstRow < 1 {
		firstRow = 1
	}
	if len(rows) < firstRow {
		return nil, fmt.Errorf("sheet '%s' has no header row at row %d", sheet, firstRow)
	}
	header := rows[firstRow-1]

	headers := models.ResolveHeaders(opts.XLS.Header)
	headerSet := make(map[string]bool, len(header))
	for _, name := range header {
		headerSet[name] = true
	}
	// a header row lacking the expected columns would otherwise skip every
	// row and produce empty output
	for _, key := range []string{models.HeaderDate, models.HeaderDescription} {
		if !headerSet[headers[key]] {
			return nil, fmt.Errorf("sheet '%s' has no '%s' column", sheet, headers[key])
		}
	}

	transactions := make([]models.Transaction, 0, len(rows)-firstRow)
	for _, cells := range rows[firstRow:] {
		row := rowMap(header, cells)
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
		Info("Parsed statement XLSX")
	return transactions, nil
}

// rowMap zips a header row with a data row. Trailing cells excelize omits
// for short rows read as empty values.
func rowMap(header, cells []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(cells) {
			row[name] = cells[i]
		} else {
			row[name] = ""
		}
	}
	return row
}
