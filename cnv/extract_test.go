package cnv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSample(t *testing.T, runPath, accession string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(runPath, "Sample_"+accession)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, accession+name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExtractRun(t *testing.T) {
	runPath := t.TempDir()

	writeSample(t, runPath, "A100", map[string]string{
		".cnv.qc":  "# header\n#QC FAIL\nother line\n#QC PASS\n",
		".metrics": "sample\trun\tstdev\tmad\tiqr\tbivar\nA100\trun1\t0.5\t0.1\t0.2\t0.3\n",
		".cnv.bed": "#Chromosome\tstart\tend\ttype\tgenes\tcoverage ratio\tcopy number\tmethod\n" +
			"chr1\t100\t200\tDEL\tGENE1\t0.5\t1\tdepth\n" +
			"chr2\t300\t400\tDUP\tGENE2\t1.5\t3\tdepth\n",
	})
	writeSample(t, runPath, "B200", nil)
	writeSample(t, runPath, "NEG1", map[string]string{
		".cnv.qc": "#QC PASS\n",
	})

	records, err := ExtractRun(runPath)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	byName := make(map[string]SampleRecord)
	for _, r := range records {
		byName[r.Sample] = r
	}

	a := byName["A100"]
	if a.QCStatus != "PASS" {
		t.Errorf("A100: last #QC line must win, got %q", a.QCStatus)
	}
	if a.Stdev != 0.5 || a.MAD != 0.1 || a.IQR != 0.2 || a.Bivar != 0.3 {
		t.Errorf("A100: unexpected metrics %+v", a)
	}
	if a.CNVCalls != 2 {
		t.Errorf("A100: expected 2 CNV calls, got %d", a.CNVCalls)
	}

	b := byName["B200"]
	if b.QCStatus != "" {
		t.Errorf("B200: expected empty status without a QC file, got %q", b.QCStatus)
	}
	if !b.Stdev.Missing() || !b.MAD.Missing() || !b.IQR.Missing() || !b.Bivar.Missing() {
		t.Errorf("B200: metrics without a metrics file must stay missing, got %+v", b)
	}
	if b.CNVCalls != 0 {
		t.Errorf("B200: expected exactly 0 CNV calls without a bed file, got %d", b.CNVCalls)
	}
}

func TestExtractRunTooManyMetrics(t *testing.T) {
	runPath := t.TempDir()
	writeSample(t, runPath, "A100", map[string]string{
		".metrics": "sample\trun\ta\tb\tc\td\te\nA100\trun1\t1\t2\t3\t4\t5\n",
	})

	if _, err := ExtractRun(runPath); err == nil {
		t.Error("expected an error for a metrics line with more than four values")
	}
}

func TestWriteRunSummary(t *testing.T) {
	records := []SampleRecord{
		{Sample: "A100", QCStatus: "PASS", Stdev: 0.5, MAD: 0.1, IQR: 0.2, Bivar: 0.3, CNVCalls: 4},
		NewSampleRecord("B200"),
	}

	summaryFile := filepath.Join(t.TempDir(), "run1_sample_cnv_qc_summary.csv")
	if err := WriteRunSummary(summaryFile, records); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(summaryFile)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "sample,CNV QC,stdev,mad,iqr,bivar,cnv_calls" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "A100,PASS,0.5,0.1,0.2,0.3,4" {
		t.Errorf("unexpected row %q", lines[1])
	}
	// Missing status and metrics render as empty fields, with cnv_calls still
	// in its own column.
	if lines[2] != "B200,,,,,,0" {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestMetricCSVRoundTrip(t *testing.T) {
	var m Metric
	if err := m.UnmarshalCSV(""); err != nil {
		t.Fatal(err)
	}
	if !m.Missing() {
		t.Error("empty field should unmarshal as missing")
	}
	if s, _ := m.MarshalCSV(); s != "" {
		t.Errorf("missing metric should marshal empty, got %q", s)
	}

	if err := m.UnmarshalCSV("1.25"); err != nil {
		t.Fatal(err)
	}
	if m != 1.25 {
		t.Errorf("expected 1.25, got %v", m)
	}
	if s, _ := m.MarshalCSV(); s != "1.25" {
		t.Errorf("expected 1.25, got %q", s)
	}
}
