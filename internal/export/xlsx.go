// Package export writes converted tables as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"

	"fjacquet/currency-csv/internal/fileutils"
	"fjacquet/currency-csv/internal/parsererror"
	"fjacquet/currency-csv/internal/table"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// WriteXLSX renders t to a single-sheet workbook. The header row is bold.
func WriteXLSX(path string, t *table.Table, sheet string) error {
	data, err := RenderXLSX(t, sheet)
	if err != nil {
		return err
	}
	return fileutils.WriteFileAtomic(path, data, 0644)
}

// RenderXLSX returns the workbook bytes for t.
func RenderXLSX(t *table.Table, sheet string) ([]byte, error) {
	if t.IsEmpty() {
		return nil, &parsererror.StructuralError{Reason: "cannot export an empty table"}
	}
	if sheet == "" {
		sheet = defaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	if err := setRow(f, sheet, 1, t.Columns); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
