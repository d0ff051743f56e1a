// Package csvsource implements the RecordSource port for a CSV password table
// on the local filesystem.
package csvsource

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// Required header names. Matching is exact after trimming whitespace.
const (
	DateColumn     = "Date"
	PasswordColumn = "Password"
)

const (
	msgEmpty          = "Password file is empty. Please contact staff for assistance."
	msgMalformed      = "Password file format is invalid. Please contact staff for assistance."
	msgMissingColumns = "Password file is missing required columns. Please contact staff for assistance."
	msgNoValidEntries = "No valid password entries found in file. Please contact staff for assistance."
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads a CSV password table. Rows with a missing value or an invalid
// date are skipped and reported as warnings; the table as a whole fails only
// when it is blank, structurally malformed, lacks the Date/Password header or
// yields no valid rows.
func Parse(data []byte) (model.ParseResult, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateInvalidCSVFormat, msgEmpty, nil)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return model.ParseResult{}, malformed(err)
	}

	dateIdx, pwIdx := columnIndex(header, DateColumn), columnIndex(header, PasswordColumn)
	if dateIdx < 0 || pwIdx < 0 {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateInvalidCSVFormat, msgMissingColumns,
			fmt.Errorf("header %q lacks %q or %q", header, DateColumn, PasswordColumn))
	}

	var result model.ParseResult
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.ParseResult{}, malformed(err)
		}

		line, _ := r.FieldPos(0)

		if isBlankLine(row) {
			continue
		}
		if len(row) != len(header) {
			return model.ParseResult{}, malformed(fmt.Errorf("row %d: has %d fields, header has %d", line, len(row), len(header)))
		}

		date := strings.TrimSpace(row[dateIdx])
		password := strings.TrimSpace(row[pwIdx])

		if date == "" || password == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: Missing date or password", line))
			continue
		}
		if !model.IsValidDate(date) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Row %d: Invalid date format %q (expected DD/MM/YYYY)", line, date))
			continue
		}

		result.Records = append(result.Records, model.PasswordRecord{Date: date, Password: password})
	}

	if len(result.Records) == 0 {
		return model.ParseResult{}, model.NewSourceError(model.ErrorStateInvalidCSVFormat, msgNoValidEntries,
			fmt.Errorf("no valid rows (%d skipped)", len(result.Warnings)))
	}

	return result, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// isBlankLine reports a line holding only whitespace. Lines with delimiters
// carry empty fields and are reported as missing values instead.
func isBlankLine(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}

func malformed(err error) error {
	return model.NewSourceError(model.ErrorStateParsingError, msgMalformed, fmt.Errorf("parse csv: %w", err))
}
