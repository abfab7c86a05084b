package cnv

import (
	"math"
	"strconv"
)

// Metric is a CNV noise metric. A missing metrics file leaves it NaN, which
// renders as an empty CSV field rather than a misleading zero.
type Metric float64

// Missing reports whether the metric was never observed.
func (m Metric) Missing() bool {
	return math.IsNaN(float64(m))
}

func (m Metric) MarshalCSV() (string, error) {
	if m.Missing() {
		return "", nil
	}
	return strconv.FormatFloat(float64(m), 'f', -1, 64), nil
}

func (m *Metric) UnmarshalCSV(field string) error {
	if field == "" {
		*m = Metric(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return err
	}
	*m = Metric(v)
	return nil
}

// SampleRecord holds the CNV-side QC data for one non-control sample. The
// fields are keyed, not positional: a sample missing its QC or metrics file
// keeps every remaining column in its own place.
type SampleRecord struct {
	Sample   string `csv:"sample"`
	QCStatus string `csv:"CNV QC"`
	Stdev    Metric `csv:"stdev"`
	MAD      Metric `csv:"mad"`
	IQR      Metric `csv:"iqr"`
	Bivar    Metric `csv:"bivar"`
	CNVCalls int    `csv:"cnv_calls"`
	RunID    string `csv:"-"`
}

// NewSampleRecord returns a record for accession with every metric missing
// and zero CNV calls.
func NewSampleRecord(accession string) SampleRecord {
	nan := Metric(math.NaN())
	return SampleRecord{
		Sample: accession,
		Stdev:  nan,
		MAD:    nan,
		IQR:    nan,
		Bivar:  nan,
	}
}
