package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet a fresh workbook starts with
const DefaultSheetName = "Sheet1"

// XLSXWriter writes a Table as a single-sheet workbook with a bold header row
type XLSXWriter struct {
	sheetName string
}

// NewXLSXWriter creates a writer. An empty sheet name keeps DefaultSheetName.
func NewXLSXWriter(sheetName string) *XLSXWriter {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &XLSXWriter{sheetName: sheetName}
}

// WriteTable renders t into a workbook and writes it to out
func (w *XLSXWriter) WriteTable(out io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != w.sheetName {
		if err := f.SetSheetName(sheet, w.sheetName); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
		sheet = w.sheetName
	}

	header := make([]interface{}, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	if err := w.styleHeader(f, sheet, len(t.Columns)); err != nil {
		return err
	}

	for i, rec := range t.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address record %d: %w", i, err)
		}
		row := rec.Interfaces()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	// The dimension keeps trailing blank records visible to readers.
	if len(t.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Columns), len(t.Records)+1)
		if err != nil {
			return fmt.Errorf("failed to address sheet dimension: %w", err)
		}
		if err := f.SetSheetDimension(sheet, "A1:"+last); err != nil {
			return fmt.Errorf("failed to set sheet dimension: %w", err)
		}
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) styleHeader(f *excelize.File, sheet string, columns int) error {
	if columns == 0 {
		return nil
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return fmt.Errorf("failed to address header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}
