package report

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// RunStats is the per-run aggregate row: column-wise means of the numeric
// merged fields plus sample counts and the CNV failure rate.
type RunStats struct {
	RunID                       string
	X10                         float64
	X20                         float64
	X50                         float64
	X100                        float64
	MeanCoverage                float64
	AvgCNVCalls                 float64
	Stdev                       float64
	MAD                         float64
	IQR                         float64
	Bivar                       float64
	MadIQRBivarSum              float64
	NumSamples                  int
	NumSamplesPassingCNVQC      int
	AvgCNVCallsInPassingSamples float64
	CNVFailureRate              float64
}

// Summary is the dataset-wide aggregate over samples passing the updated
// coverage QC.
type Summary struct {
	Group                    string
	X10                      float64
	X20                      float64
	X50                      float64
	X100                     float64
	MeanCoverage             float64
	CNVCalls                 float64
	Stdev                    float64
	MAD                      float64
	IQR                      float64
	Bivar                    float64
	MadIQRBivarSum           float64
	NumSamplesPassingExomeQC int
}

// RunStatsTable groups the merged table by run ID, in sorted run order.
// Means are taken over the explicitly numeric fields only, skipping missing
// values; an aggregate with nothing to average becomes 0.
func RunStatsTable(records []MergedRecord) []RunStats {
	byRun := make(map[string][]MergedRecord)
	runIDs := []string{}
	for _, r := range records {
		if _, ok := byRun[r.RunID]; !ok {
			runIDs = append(runIDs, r.RunID)
		}
		byRun[r.RunID] = append(byRun[r.RunID], r)
	}
	sort.Strings(runIDs)

	table := make([]RunStats, 0, len(runIDs))
	for _, runID := range runIDs {
		group := byRun[runID]

		var passing []MergedRecord
		for _, r := range group {
			if r.CNVQC == "PASS" {
				passing = append(passing, r)
			}
		}

		passingCalls := make([]float64, 0, len(passing))
		for _, r := range passing {
			passingCalls = append(passingCalls, float64(r.CNVCalls))
		}

		row := RunStats{
			RunID:                       runID,
			X10:                         meanOf(group, func(r MergedRecord) float64 { return r.X10 }),
			X20:                         meanOf(group, func(r MergedRecord) float64 { return r.X20 }),
			X50:                         meanOf(group, func(r MergedRecord) float64 { return r.X50 }),
			X100:                        meanOf(group, func(r MergedRecord) float64 { return r.X100 }),
			MeanCoverage:                meanOf(group, func(r MergedRecord) float64 { return r.MeanCoverage }),
			AvgCNVCalls:                 meanOf(group, func(r MergedRecord) float64 { return float64(r.CNVCalls) }),
			Stdev:                       meanOf(group, func(r MergedRecord) float64 { return float64(r.Stdev) }),
			MAD:                         meanOf(group, func(r MergedRecord) float64 { return float64(r.MAD) }),
			IQR:                         meanOf(group, func(r MergedRecord) float64 { return float64(r.IQR) }),
			Bivar:                       meanOf(group, func(r MergedRecord) float64 { return float64(r.Bivar) }),
			MadIQRBivarSum:              meanOf(group, func(r MergedRecord) float64 { return float64(r.MadIQRBivarSum) }),
			NumSamples:                  len(group),
			NumSamplesPassingCNVQC:      len(passing),
			AvgCNVCallsInPassingSamples: round2(mean(passingCalls)),
		}
		row.CNVFailureRate = 1 - float64(row.NumSamplesPassingCNVQC)/float64(row.NumSamples)

		table = append(table, row)
	}

	return table
}

// Summarize aggregates the rows passing the updated coverage QC into one
// group=Total row.
func Summarize(records []MergedRecord) Summary {
	var passing []MergedRecord
	for _, r := range records {
		if r.ExomeQCUpdated == "PASS" {
			passing = append(passing, r)
		}
	}

	return Summary{
		Group:                    "Total",
		X10:                      meanOf(passing, func(r MergedRecord) float64 { return r.X10 }),
		X20:                      meanOf(passing, func(r MergedRecord) float64 { return r.X20 }),
		X50:                      meanOf(passing, func(r MergedRecord) float64 { return r.X50 }),
		X100:                     meanOf(passing, func(r MergedRecord) float64 { return r.X100 }),
		MeanCoverage:             meanOf(passing, func(r MergedRecord) float64 { return r.MeanCoverage }),
		CNVCalls:                 meanOf(passing, func(r MergedRecord) float64 { return float64(r.CNVCalls) }),
		Stdev:                    meanOf(passing, func(r MergedRecord) float64 { return float64(r.Stdev) }),
		MAD:                      meanOf(passing, func(r MergedRecord) float64 { return float64(r.MAD) }),
		IQR:                      meanOf(passing, func(r MergedRecord) float64 { return float64(r.IQR) }),
		Bivar:                    meanOf(passing, func(r MergedRecord) float64 { return float64(r.Bivar) }),
		MadIQRBivarSum:           meanOf(passing, func(r MergedRecord) float64 { return float64(r.MadIQRBivarSum) }),
		NumSamplesPassingExomeQC: len(passing),
	}
}

func meanOf(records []MergedRecord, field func(MergedRecord) float64) float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		values = append(values, field(r))
	}
	return mean(values)
}

// mean averages the non-missing values; with nothing left to average it
// returns 0, matching the report's fill-missing-aggregates-with-zero rule.
func mean(values []float64) float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}

	m, err := stats.Mean(kept)
	if err != nil {
		return 0
	}
	return m
}

func round2(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return 0
	}
	return r
}

func containsRD(sample string) bool {
	return strings.Contains(sample, "RD")
}
