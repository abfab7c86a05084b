// Package runs discovers completed sequencing runs under the NGS directory
// tree and resolves per-run, per-panel project paths.
package runs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// Layout describes where aligned run output lives: a root directory with one
// subdirectory per platform, and a per-panel relative path inside each run.
type Layout struct {
	Root       string
	PanelPaths map[string]string
}

// DefaultLayout matches the production NGS filesystem.
var DefaultLayout = Layout{
	Root: "/NGS",
	PanelPaths: map[string]string{
		"Exome":      "Aligned_Exomes_SGE/Project_98_Exome",
		"Neuropathy": "Aligned_Panel_9801_SGE/Project_9801_Neuropathy",
		"LynchHRD":   "Aligned_Panel_283_SGE/Project_283_lynchHRD",
	},
}

// PanelPath resolves the panel subpath for a platform. Novaseq output uses a
// different project numbering convention, so any _98_ path segment becomes
// _298_ there.
func (l Layout) PanelPath(platform, panel string) string {
	panelPath := l.PanelPaths[panel]
	if strings.Contains(platform, "Novaseq") {
		panelPath = strings.ReplaceAll(panelPath, "_98_", "_298_")
	}
	return panelPath
}

// RunPath resolves the project directory for one run.
func (l Layout) RunPath(platform, runID, panel string) string {
	return filepath.Join(l.Root, platform, runID, l.PanelPath(platform, panel))
}

// SelectRuns returns the IDs of runs whose directory name starts with prefix
// and which contain the panel's project subdirectory. Order follows glob
// enumeration; an empty result is an expected outcome, not an error.
func (l Layout) SelectRuns(platform, prefix, panel string) ([]string, error) {
	pattern := filepath.Join(l.Root, platform, prefix+"*", l.PanelPath(platform, panel))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, pfx.Err(err)
	}

	runIDs := make([]string, 0, len(matches))
	for _, match := range matches {
		// The match is the project dir; the run directory is its grandparent.
		runIDs = append(runIDs, filepath.Base(filepath.Dir(filepath.Dir(match))))
	}

	return runIDs, nil
}

// SampleDirs lists the Sample_* subdirectories of a run's project directory,
// excluding negative controls ("NEG"/"Neg" in the name). Both the CNV and
// coverage extractors consume this single listing.
func SampleDirs(runPath string) ([]string, error) {
	entries, err := os.ReadDir(runPath)
	if err != nil {
		return nil, pfx.Err(err)
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "Sample_") {
			continue
		}
		if strings.Contains(name, "NEG") || strings.Contains(name, "Neg") {
			continue
		}
		dirs = append(dirs, name)
	}

	return dirs, nil
}

// Accession strips the Sample_ directory prefix from a sample directory name.
func Accession(sampleDir string) string {
	return strings.TrimPrefix(sampleDir, "Sample_")
}
