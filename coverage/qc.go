package coverage

// QCStatus applies the updated coverage QC rule. Thresholds are on the
// 0-100 percentage scale the extractor emits.
func QCStatus(meanQS, q30, x10, x20, meanCoverage float64) string {
	if meanQS >= 30 && q30 >= 75 && x10 >= 98 && x20 >= 97 && meanCoverage >= 70 {
		return "PASS"
	}
	return "FAIL"
}

// LegacyQCStatus applies the historical exome QC rule. Its X10/X20 cutoffs
// are on a 0-1 fraction scale even though the extractor populates those
// fields as 0-100 percentages; that mismatch is a known characteristic of
// the rule as deployed and is kept as-is.
func LegacyQCStatus(x10, x20, meanCoverage float64) string {
	if x10 < 0.95 || x20 < 0.9 || meanCoverage < 50 {
		return "FAIL"
	}
	return "PASS"
}

// QC classifies the record under the updated rule.
func (r Record) QC() string {
	return QCStatus(r.MeanQS, r.Q30, r.X10, r.X20, r.MeanCoverage)
}
