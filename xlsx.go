// Package autocnvqc holds shared spreadsheet glue for the CNV QC reporting
// tool.
package autocnvqc

import (
	"math"

	"github.com/carbocation/pfx"
	"github.com/xuri/excelize/v2"
)

// AddSheet creates the named worksheet and fills it row by row, starting at
// A1. The first row is expected to be the header.
func AddSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	f.NewSheet(sheet)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return pfx.Err(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return pfx.Err(err)
		}
	}
	return nil
}

// SaveWorkbook drops the default Sheet1 left over from workbook creation and
// writes the file.
func SaveWorkbook(f *excelize.File, path string) error {
	f.DeleteSheet("Sheet1")
	return pfx.Err(f.SaveAs(path))
}

// Cell returns v as a spreadsheet cell value; NaN becomes an empty cell
// instead of an unreadable literal.
func Cell(v float64) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	return v
}
