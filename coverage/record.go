// Package coverage extracts per-sample coverage statistics from the nested
// coverage JSON records, classifies them, and writes the per-run spreadsheet.
package coverage

import (
	"strconv"
	"strings"
)

// Schema distinguishes the two coverage record layouts in the field: the
// newer deep-coverage layout carries X150/X500/X1000 and a yield, the legacy
// layout carries X100 and a PCR duplication rate.
type Schema int

const (
	SchemaLegacy Schema = iota
	SchemaDeep
)

// Record is one sample's flattened coverage statistics. It carries the full
// column universe of both schemas; fields absent from the source record stay
// zero.
type Record struct {
	Sample       string
	Specificity  float64
	MeanQS       float64
	PerfectIndex float64
	Q30          float64
	X10          float64
	X20          float64
	X50          float64
	X100         float64
	X150         float64
	X500         float64
	X1000        float64
	Yield        float64
	PCRDupRate   float64
	MeanCoverage float64
	Schema       Schema
}

// fromFlat builds a Record from a flattened coverage document. The schema is
// chosen by the presence of the X1000 key.
func fromFlat(flat map[string]interface{}) Record {
	r := Record{
		Sample:       asString(flat["sample"]),
		Specificity:  asFloat(flat["specificity"]),
		MeanQS:       asFloat(flat["mean_QS"]),
		PerfectIndex: asFloat(flat["perfect_index"]),
		Q30:          asFloat(flat["q30"]),
		X10:          asFloat(flat["X10"]),
		X20:          asFloat(flat["X20"]),
		X50:          asFloat(flat["X50"]),
		X100:         asFloat(flat["X100"]),
		X150:         asFloat(flat["X150"]),
		X500:         asFloat(flat["X500"]),
		X1000:        asFloat(flat["X1000"]),
		Yield:        asFloat(flat["yield"]),
		PCRDupRate:   asFloat(flat["pcr_dup_rate"]),
		MeanCoverage: asFloat(flat["mean_coverage"]),
	}
	if _, ok := flat["X1000"]; ok {
		r.Schema = SchemaDeep
	}
	return r
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
