// Package cnv extracts per-sample CNV QC rows from aligned run directories
// and writes the per-run summary CSV.
package cnv

import (
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/genomelab/autocnvqc/runs"
)

// ExtractRun reads the QC status, noise metrics, and CNV call count for
// every non-control sample in one run's project directory. A missing QC or
// metrics file contributes missing fields; a missing CNV bed file counts as
// zero calls.
func ExtractRun(runPath string) ([]SampleRecord, error) {
	sampleDirs, err := runs.SampleDirs(runPath)
	if err != nil {
		return nil, err
	}

	records := make([]SampleRecord, 0, len(sampleDirs))
	for _, sampleDir := range sampleDirs {
		accession := runs.Accession(sampleDir)
		record := NewSampleRecord(accession)

		qcFile := filepath.Join(runPath, sampleDir, accession+".cnv.qc")
		if fileExists(qcFile) {
			record.QCStatus, err = readQCStatus(qcFile)
			if err != nil {
				return nil, err
			}
		}

		metricsFile := filepath.Join(runPath, sampleDir, accession+".metrics")
		if fileExists(metricsFile) {
			if err := applyMetrics(metricsFile, &record); err != nil {
				return nil, err
			}
		}

		bedFile := filepath.Join(runPath, sampleDir, accession+".cnv.bed")
		if fileExists(bedFile) {
			record.CNVCalls, err = countCalls(bedFile)
			if err != nil {
				return nil, err
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// WriteRunSummary writes one run's records as a CSV with the fixed header
// sample, CNV QC, stdev, mad, iqr, bivar, cnv_calls.
func WriteRunSummary(summaryFile string, records []SampleRecord) error {
	f, err := os.Create(summaryFile)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(gocsv.MarshalFile(&records, f))
}

// ExtractAll extracts every run, writes each run's summary CSV under outdir,
// and returns the accumulated rows tagged with their run ID.
func ExtractAll(layout runs.Layout, runIDs []string, platform, panel, outdir string) ([]SampleRecord, error) {
	var all []SampleRecord
	for _, runID := range runIDs {
		runPath := layout.RunPath(platform, runID, panel)

		records, err := ExtractRun(runPath)
		if err != nil {
			return nil, err
		}

		summaryFile := filepath.Join(outdir, runID+"_sample_cnv_qc_summary.csv")
		if err := WriteRunSummary(summaryFile, records); err != nil {
			return nil, err
		}
		log.Println("Wrote CNV QC summary for", runID, "covering", len(records), "samples")

		for i := range records {
			records[i].RunID = runID
		}
		all = append(all, records...)
	}

	return all, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
