package report

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/genomelab/autocnvqc"
)

var sampleHeader = []string{
	"run_id", "sample", "X10", "X20", "X50", "X100", "mean_coverage",
	"Exome_QC_old", "Exome_QC_updated", "CNV QC", "cnv_calls",
	"stdev", "mad", "iqr", "bivar", "MadIQRBivarSum",
}

var runStatsHeader = []string{
	"run_id", "X10", "X20", "X50", "X100", "mean_coverage", "avg_cnv_calls",
	"stdev", "mad", "iqr", "bivar", "MadIQRBivarSum", "num_samples",
	"num_samples_passing_CNVqc", "avg_cnv_calls_in_passing_samples",
	"CNV_failure_rate",
}

var summaryHeader = []string{
	"group", "X10", "X20", "X50", "X100", "mean_coverage", "cnv_calls",
	"stdev", "mad", "iqr", "bivar", "MadIQRBivarSum",
	"num_samples_passing_Exomeqc",
}

func sampleRows(records []MergedRecord) [][]interface{} {
	rows := [][]interface{}{headerRow(sampleHeader)}
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.RunID, r.Sample,
			autocnvqc.Cell(r.X10), autocnvqc.Cell(r.X20), autocnvqc.Cell(r.X50),
			autocnvqc.Cell(r.X100), autocnvqc.Cell(r.MeanCoverage),
			r.ExomeQCOld, r.ExomeQCUpdated, r.CNVQC, r.CNVCalls,
			autocnvqc.Cell(float64(r.Stdev)), autocnvqc.Cell(float64(r.MAD)),
			autocnvqc.Cell(float64(r.IQR)), autocnvqc.Cell(float64(r.Bivar)),
			autocnvqc.Cell(float64(r.MadIQRBivarSum)),
		})
	}
	return rows
}

func runStatsRows(table []RunStats) [][]interface{} {
	rows := [][]interface{}{headerRow(runStatsHeader)}
	for _, s := range table {
		rows = append(rows, []interface{}{
			s.RunID,
			autocnvqc.Cell(s.X10), autocnvqc.Cell(s.X20), autocnvqc.Cell(s.X50),
			autocnvqc.Cell(s.X100), autocnvqc.Cell(s.MeanCoverage),
			autocnvqc.Cell(s.AvgCNVCalls),
			autocnvqc.Cell(s.Stdev), autocnvqc.Cell(s.MAD), autocnvqc.Cell(s.IQR),
			autocnvqc.Cell(s.Bivar), autocnvqc.Cell(s.MadIQRBivarSum),
			s.NumSamples, s.NumSamplesPassingCNVQC,
			autocnvqc.Cell(s.AvgCNVCallsInPassingSamples),
			autocnvqc.Cell(s.CNVFailureRate),
		})
	}
	return rows
}

func summaryRows(s Summary) [][]interface{} {
	return [][]interface{}{
		headerRow(summaryHeader),
		{
			s.Group,
			autocnvqc.Cell(s.X10), autocnvqc.Cell(s.X20), autocnvqc.Cell(s.X50),
			autocnvqc.Cell(s.X100), autocnvqc.Cell(s.MeanCoverage),
			autocnvqc.Cell(s.CNVCalls),
			autocnvqc.Cell(s.Stdev), autocnvqc.Cell(s.MAD), autocnvqc.Cell(s.IQR),
			autocnvqc.Cell(s.Bivar), autocnvqc.Cell(s.MadIQRBivarSum),
			s.NumSamplesPassingExomeQC,
		},
	}
}

func headerRow(header []string) []interface{} {
	row := make([]interface{}, len(header))
	for i, col := range header {
		row[i] = col
	}
	return row
}

// Compile writes the final multi-sheet workbook and the two diagnostic
// regression plots for the clinical run statistics.
func Compile(outdir, platform, prefix, panel string, merged []MergedRecord) error {
	clinical := Clinical(merged)
	runStatsAll := RunStatsTable(merged)
	runStatsClinical := RunStatsTable(clinical)
	summary := Summarize(clinical)

	f := excelize.NewFile()
	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"all_samples", sampleRows(merged)},
		{"clinical_samples", sampleRows(clinical)},
		{"run_stats_all", runStatsRows(runStatsAll)},
		{"run_stats_clinical", runStatsRows(runStatsClinical)},
		{"summary", summaryRows(summary)},
	}
	for _, sheet := range sheets {
		if err := autocnvqc.AddSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	workbook := filepath.Join(outdir, fmt.Sprintf("%s_%s_%s_stats.xlsx", platform, prefix, panel))
	if err := autocnvqc.SaveWorkbook(f, workbook); err != nil {
		return err
	}
	log.Println("Wrote", workbook)

	if err := writeRegPlot(outdir, runStatsClinical, "CNV_failure_rate", "MadIQRBivarSum"); err != nil {
		return err
	}
	return writeRegPlot(outdir, runStatsClinical, "avg_cnv_calls_in_passing_samples", "MadIQRBivarSum")
}
