package coverage

import (
	"github.com/xuri/excelize/v2"

	"github.com/genomelab/autocnvqc"
)

var baseColumns = []string{
	"sample", "specificity", "mean_QS", "perfect_index", "q30", "X10", "X20", "X50",
}

var deepColumns = []string{"X150", "X500", "X1000", "yield", "mean_coverage"}

var legacyColumns = []string{"X100", "pcr_dup_rate", "mean_coverage"}

// sheetColumns picks the column set for a run: the base columns plus the
// extension of every schema present among the records.
func sheetColumns(records []Record) []string {
	cols := append([]string{}, baseColumns...)
	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		seen[col] = true
	}

	var haveDeep, haveLegacy bool
	for _, r := range records {
		switch r.Schema {
		case SchemaDeep:
			haveDeep = true
		default:
			haveLegacy = true
		}
	}

	add := func(ext []string) {
		for _, col := range ext {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}
	if haveDeep {
		add(deepColumns)
	}
	if haveLegacy {
		add(legacyColumns)
	}

	return cols
}

func (r Record) field(col string) interface{} {
	switch col {
	case "sample":
		return r.Sample
	case "specificity":
		return r.Specificity
	case "mean_QS":
		return r.MeanQS
	case "perfect_index":
		return r.PerfectIndex
	case "q30":
		return r.Q30
	case "X10":
		return r.X10
	case "X20":
		return r.X20
	case "X50":
		return r.X50
	case "X100":
		return r.X100
	case "X150":
		return r.X150
	case "X500":
		return r.X500
	case "X1000":
		return r.X1000
	case "yield":
		return r.Yield
	case "pcr_dup_rate":
		return r.PCRDupRate
	case "mean_coverage":
		return r.MeanCoverage
	case "coverage_qc":
		return r.QC()
	}
	return ""
}

// WriteRunSheet writes one run's coverage statistics, plus the coverage_qc
// verdict, to a single-sheet workbook. The verdict column exists only in
// this side output; the in-memory table does not keep it.
func WriteRunSheet(sheetFile string, records []Record) error {
	cols := append(sheetColumns(records), "coverage_qc")

	rows := make([][]interface{}, 0, len(records)+1)
	header := make([]interface{}, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	rows = append(rows, header)

	for _, r := range records {
		row := make([]interface{}, len(cols))
		for i, col := range cols {
			row[i] = r.field(col)
		}
		rows = append(rows, row)
	}

	f := excelize.NewFile()
	if err := autocnvqc.AddSheet(f, "coverage_stats", rows); err != nil {
		return err
	}
	return autocnvqc.SaveWorkbook(f, sheetFile)
}
