package runs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testLayout(root string) Layout {
	layout := DefaultLayout
	layout.Root = root
	return layout
}

func TestPanelPathNovaseqSubstitution(t *testing.T) {
	layout := DefaultLayout

	nextseq := layout.PanelPath("Nextseq", "Exome")
	if !strings.Contains(nextseq, "_98_") {
		t.Errorf("Nextseq exome path %q should contain _98_", nextseq)
	}

	novaseq := layout.PanelPath("Novaseq", "Exome")
	if !strings.Contains(novaseq, "_298_") {
		t.Errorf("Novaseq exome path %q should contain _298_", novaseq)
	}
	if strings.ReplaceAll(novaseq, "_298_", "_98_") != nextseq {
		t.Errorf("Novaseq path %q should differ from %q only in the project number", novaseq, nextseq)
	}

	// The 9801 panel number must not be mangled by the 98->298 rewrite.
	if got := layout.PanelPath("Novaseq", "Neuropathy"); got != layout.PanelPath("Nextseq", "Neuropathy") {
		t.Errorf("Neuropathy path changed under Novaseq: %q", got)
	}
}

func TestSelectRuns(t *testing.T) {
	root := t.TempDir()
	for _, runID := range []string{"220501_A00100_0001", "220519_A00100_0002", "220101_A00100_0003"} {
		dir := filepath.Join(root, "Nextseq", runID, "Aligned_Exomes_SGE", "Project_98_Exome")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	// A run without the panel subdirectory must not match.
	if err := os.MkdirAll(filepath.Join(root, "Nextseq", "220530_A00100_0004"), 0755); err != nil {
		t.Fatal(err)
	}

	runIDs, err := testLayout(root).SelectRuns("Nextseq", "2205", "Exome")
	if err != nil {
		t.Fatal(err)
	}

	if len(runIDs) != 2 {
		t.Fatalf("expected 2 runs, got %v", runIDs)
	}
	for _, runID := range runIDs {
		if !strings.HasPrefix(runID, "2205") {
			t.Errorf("run %q does not match the date prefix", runID)
		}
	}
}

func TestSelectRunsEmpty(t *testing.T) {
	runIDs, err := testLayout(t.TempDir()).SelectRuns("Nextseq", "2205", "Exome")
	if err != nil {
		t.Fatal(err)
	}
	if len(runIDs) != 0 {
		t.Errorf("expected no runs, got %v", runIDs)
	}
}

func TestSampleDirs(t *testing.T) {
	runPath := t.TempDir()
	for _, dir := range []string{"Sample_A100", "Sample_NEG1", "Sample_WaterNeg", "Undetermined"} {
		if err := os.Mkdir(filepath.Join(runPath, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// Regular files are not sample directories.
	if err := os.WriteFile(filepath.Join(runPath, "Sample_B200"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	dirs, err := SampleDirs(runPath)
	if err != nil {
		t.Fatal(err)
	}

	if len(dirs) != 1 || dirs[0] != "Sample_A100" {
		t.Errorf("expected [Sample_A100], got %v", dirs)
	}
	if got := Accession(dirs[0]); got != "A100" {
		t.Errorf("expected accession A100, got %q", got)
	}
}
