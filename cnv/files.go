package cnv

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// readQCStatus scans a per-sample .cnv.qc file for lines of the form
// "#QC <status>" and returns the status from the last one.
func readQCStatus(qcFile string) (string, error) {
	f, err := os.Open(qcFile)
	if err != nil {
		return "", pfx.Err(err)
	}
	defer f.Close()

	var status string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "#QC") {
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), " ")
		if len(fields) > 1 {
			status = fields[1]
		}
	}

	return status, pfx.Err(scanner.Err())
}

// applyMetrics parses a per-sample .metrics file and fills the record's
// metric fields. The first line not starting with the "sample" header token
// is the data line; values start at the third tab-separated field and map in
// order to stdev, mad, iqr, bivar.
func applyMetrics(metricsFile string, record *SampleRecord) error {
	f, err := os.Open(metricsFile)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "sample") {
			continue
		}

		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < 2 {
			fields = nil
		} else {
			fields = fields[2:]
		}

		targets := []*Metric{&record.Stdev, &record.MAD, &record.IQR, &record.Bivar}
		if len(fields) > len(targets) {
			return fmt.Errorf("%s: expected at most %d metric values, found %d", metricsFile, len(targets), len(fields))
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return pfx.Err(err)
			}
			*targets[i] = Metric(v)
		}

		return nil
	}

	return pfx.Err(scanner.Err())
}

// countCalls counts the data rows of a per-sample .cnv.bed file, skipping
// #-prefixed comment and header lines.
func countCalls(bedFile string) (int, error) {
	f, err := os.Open(bedFile)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer f.Close()

	calls := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		calls++
	}

	return calls, pfx.Err(scanner.Err())
}
