package report

import (
	"math"
	"testing"

	"github.com/genomelab/autocnvqc/cnv"
	"github.com/genomelab/autocnvqc/coverage"
)

func TestMergeInnerJoin(t *testing.T) {
	cnvTable := []cnv.SampleRecord{
		{Sample: "A100", RunID: "run1", QCStatus: "PASS", MAD: 1, IQR: 2, Bivar: 3, CNVCalls: 5},
		{Sample: "B200", RunID: "run1", QCStatus: "PASS"},
	}
	covTable := []coverage.Record{
		{Sample: "A100", X10: 99, X20: 98, MeanQS: 31, Q30: 80, MeanCoverage: 75},
		{Sample: "C300", X10: 99, X20: 98, MeanQS: 31, Q30: 80, MeanCoverage: 75},
	}

	merged := Merge(cnvTable, covTable)

	if len(merged) != 1 {
		t.Fatalf("inner join must drop unmatched samples, got %d rows", len(merged))
	}

	got := merged[0]
	if got.Sample != "A100" || got.RunID != "run1" {
		t.Errorf("unexpected row %+v", got)
	}
	if got.MadIQRBivarSum != 6 {
		t.Errorf("expected MadIQRBivarSum 6, got %v", got.MadIQRBivarSum)
	}
	if got.ExomeQCUpdated != "PASS" {
		t.Errorf("expected updated QC PASS, got %s", got.ExomeQCUpdated)
	}
	if got.ExomeQCOld != "PASS" {
		t.Errorf("expected legacy QC PASS, got %s", got.ExomeQCOld)
	}
}

func TestMergeMissingMetricsStayMissing(t *testing.T) {
	cnvTable := []cnv.SampleRecord{cnv.NewSampleRecord("A100")}
	cnvTable[0].RunID = "run1"
	covTable := []coverage.Record{{Sample: "A100", MeanCoverage: 75}}

	merged := Merge(cnvTable, covTable)
	if len(merged) != 1 {
		t.Fatalf("expected 1 row, got %d", len(merged))
	}

	// A missing metric must surface as NaN in the sum, never as a silent 0
	// that would hide a join problem.
	if !math.IsNaN(float64(merged[0].MadIQRBivarSum)) {
		t.Errorf("expected NaN MadIQRBivarSum, got %v", merged[0].MadIQRBivarSum)
	}
}

func TestMergeRulesDisagree(t *testing.T) {
	cnvTable := []cnv.SampleRecord{{Sample: "A100", RunID: "run1"}}
	covTable := []coverage.Record{
		// Percentage-scale X10/X20 pass the fractional legacy cutoffs while
		// the updated rule fails on coverage depth.
		{Sample: "A100", X10: 99, X20: 98, MeanQS: 31, Q30: 80, MeanCoverage: 60},
	}

	merged := Merge(cnvTable, covTable)
	if merged[0].ExomeQCOld != "PASS" || merged[0].ExomeQCUpdated != "FAIL" {
		t.Errorf("expected legacy PASS and updated FAIL, got %s / %s",
			merged[0].ExomeQCOld, merged[0].ExomeQCUpdated)
	}
}

func TestClinical(t *testing.T) {
	records := []MergedRecord{
		{Sample: "A100"},
		{Sample: "RD12345"},
		{Sample: "XRD99"},
	}

	clinical := Clinical(records)
	if len(clinical) != 1 || clinical[0].Sample != "A100" {
		t.Errorf("RD-marked samples must be excluded, got %+v", clinical)
	}
}
