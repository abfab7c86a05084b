// Package report joins the CNV and coverage tables, aggregates per-run
// statistics, and emits the final workbook and diagnostic plots.
package report

import (
	"github.com/genomelab/autocnvqc/cnv"
	"github.com/genomelab/autocnvqc/coverage"
)

// MergedRecord is one sample's combined CNV and coverage QC row, projected
// to the fixed report column set.
type MergedRecord struct {
	RunID          string
	Sample         string
	X10            float64
	X20            float64
	X50            float64
	X100           float64
	MeanCoverage   float64
	ExomeQCOld     string
	ExomeQCUpdated string
	CNVQC          string
	CNVCalls       int
	Stdev          cnv.Metric
	MAD            cnv.Metric
	IQR            cnv.Metric
	Bivar          cnv.Metric
	MadIQRBivarSum cnv.Metric
}

// Merge inner-joins the two tables on sample accession, keeping the CNV
// table's row order. Samples present in only one table are dropped; that is
// deliberate, unmatched samples have nothing to report on. Missing CNV
// metrics stay NaN through the MadIQRBivarSum sum rather than turning into a
// silent zero.
func Merge(cnvTable []cnv.SampleRecord, covTable []coverage.Record) []MergedRecord {
	covBySample := make(map[string]coverage.Record, len(covTable))
	for _, cov := range covTable {
		if _, ok := covBySample[cov.Sample]; !ok {
			covBySample[cov.Sample] = cov
		}
	}

	merged := make([]MergedRecord, 0, len(cnvTable))
	for _, row := range cnvTable {
		cov, ok := covBySample[row.Sample]
		if !ok {
			continue
		}

		merged = append(merged, MergedRecord{
			RunID:          row.RunID,
			Sample:         row.Sample,
			X10:            cov.X10,
			X20:            cov.X20,
			X50:            cov.X50,
			X100:           cov.X100,
			MeanCoverage:   cov.MeanCoverage,
			ExomeQCOld:     coverage.LegacyQCStatus(cov.X10, cov.X20, cov.MeanCoverage),
			ExomeQCUpdated: cov.QC(),
			CNVQC:          row.QCStatus,
			CNVCalls:       row.CNVCalls,
			Stdev:          row.Stdev,
			MAD:            row.MAD,
			IQR:            row.IQR,
			Bivar:          row.Bivar,
			MadIQRBivarSum: row.MAD + row.IQR + row.Bivar,
		})
	}

	return merged
}

// Clinical filters out research samples, marked by an RD substring in the
// sample ID.
func Clinical(records []MergedRecord) []MergedRecord {
	clinical := make([]MergedRecord, 0, len(records))
	for _, r := range records {
		if !containsRD(r.Sample) {
			clinical = append(clinical, r)
		}
	}
	return clinical
}
