package coverage

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/genomelab/autocnvqc/runs"
)

// ExtractRun reads the coverage record of every non-control sample in one
// run's project directory. Samples without a coverage record are skipped.
// The Neuropathy panel stores its records under a .trim filename variant.
func ExtractRun(runPath, panel string) ([]Record, error) {
	sampleDirs, err := runs.SampleDirs(runPath)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(sampleDirs))
	for _, sampleDir := range sampleDirs {
		accession := runs.Accession(sampleDir)

		covFile := filepath.Join(runPath, sampleDir, accession+".coverage.json")
		if panel == "Neuropathy" {
			covFile = strings.ReplaceAll(covFile, "coverage.json", "trim.coverage.json")
		}
		if _, err := os.Stat(covFile); err != nil {
			continue
		}

		flat, err := readFlat(covFile)
		if err != nil {
			return nil, err
		}
		records = append(records, fromFlat(flat))
	}

	return records, nil
}

// ExtractAll extracts every run, writes each run's coverage spreadsheet
// under outdir, and returns the accumulated records with the .trim naming
// artifact stripped from sample IDs.
func ExtractAll(layout runs.Layout, runIDs []string, platform, panel, outdir string) ([]Record, error) {
	var all []Record
	for _, runID := range runIDs {
		runPath := layout.RunPath(platform, runID, panel)

		records, err := ExtractRun(runPath, panel)
		if err != nil {
			return nil, err
		}

		sheetFile := filepath.Join(outdir, runID+"_cov_stats.xlsx")
		if err := WriteRunSheet(sheetFile, records); err != nil {
			return nil, err
		}
		log.Println("Wrote coverage stats for", runID, "covering", len(records), "samples")

		for i := range records {
			records[i].Sample = strings.ReplaceAll(records[i].Sample, ".trim", "")
		}
		all = append(all, records...)
	}

	return all, nil
}
