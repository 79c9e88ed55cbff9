package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM helps Excel recognize UTF-8 CSV files
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct{}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes headers and records to out
func (w *CSVWriter) WriteCSV(out io.Writer, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if isLoneBlank(record) {
			if err := writeQuotedBlank(writer, out); err != nil {
				return fmt.Errorf("failed to write record %d: %w", i, err)
			}
			continue
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// isLoneBlank reports whether record would be written as an empty line,
// which CSV readers skip.
func isLoneBlank(record []string) bool {
	return len(record) == 1 && record[0] == ""
}

func writeQuotedBlank(writer *csv.Writer, out io.Writer) error {
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\"\"\n")
	return err
}

// WriteTable writes t as a BOM-prefixed CSV document
func (w *CSVWriter) WriteTable(out io.Writer, t *Table) error {
	rows := t.StringRows()
	return w.WriteCSV(out, WriteOptions{
		Headers:   rows[0],
		Records:   rows[1:],
		BOMPrefix: true,
	})
}
