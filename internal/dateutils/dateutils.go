// Package dateutils provides date parsing for the formats bank statement
// exports commonly use.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutLedger   = "2006/01/02"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the list of layouts tried when parsing statement dates.
// Order matters for ambiguous slash dates: the US month-first layout comes
// before the day-first one, so "03/04/2023" parses as March 4. Day-first
// exports are only read correctly when the day is greater than 12.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutLedger,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	"02-01-2006",
	"02/01/2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = strings.TrimSpace(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatLedgerDate renders a date in the YYYY/MM/DD form ledger entries use.
func FormatLedgerDate(t time.Time) string {
	return t.Format(DateLayoutLedger)
}
