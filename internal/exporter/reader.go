package exporter

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "odooseed/internal/errors"
	"odooseed/internal/infrastructure"
	"odooseed/internal/validation"
)

type readOptions struct {
	logger *slog.Logger
}

// ReadOption configures ReadTable
type ReadOption func(*readOptions)

// ReadWithLogger sets the logger used to report unreadable files
func ReadWithLogger(logger *slog.Logger) ReadOption {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ReadTable reads an exported .xlsx or .csv file back into a Table of text
// values. Short rows are padded with blanks to the header width.
func ReadTable(path string, opts ...ReadOption) (*Table, error) {
	options := readOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = infrastructure.GetLogger()
	}
	logger := infrastructure.WithComponent(options.logger, "reader")

	if err := validation.NewFileValidator(logger).ValidateSpreadsheetFile(path); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		rows, err = readXLSXRows(path)
	}
	if err != nil {
		return nil, err
	}

	return tableFromRows(path, rows)
}

// readXLSXRows returns the raw cell values of the first sheet
func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}

	// GetRows trims trailing empty rows; restore them from the dimension.
	if len(rows) > 0 {
		for n := dimensionRows(f, sheets[0]); len(rows) < n; {
			rows = append(rows, nil)
		}
	}
	return rows, nil
}

// dimensionRows returns the last row of the sheet's used range, or 0 when
// the workbook does not record one.
func dimensionRows(f *excelize.File, sheet string) int {
	ref, err := f.GetSheetDimension(sheet)
	if err != nil || ref == "" {
		return 0
	}
	cells := strings.Split(ref, ":")
	_, row, err := excelize.CellNameToCoordinates(cells[len(cells)-1])
	if err != nil {
		return 0
	}
	return row
}

// readCSVRows reads every CSV record, skipping a leading UTF-8 BOM
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open CSV file", err)
	}
	defer file.Close()

	br := bufio.NewReader(file)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, apperrors.NewParsingError("failed to skip BOM", err)
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError("failed to read CSV file", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func tableFromRows(path string, rows [][]string) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("%s has no header row", filepath.Base(path)), nil)
	}

	table := NewTable(rows[0]...)
	for i, row := range rows[1:] {
		if len(row) > len(table.Columns) {
			return nil, apperrors.NewShapeError(i, len(row), len(table.Columns))
		}
		values := make([]Value, len(table.Columns))
		for j := range values {
			if j < len(row) {
				values[j] = Text(row[j])
			}
		}
		if err := table.Append(values...); err != nil {
			return nil, err
		}
	}
	return table, nil
}
