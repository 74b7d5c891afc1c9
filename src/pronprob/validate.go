package pronprob

// CheckConsistency returns a *ConsistencyError built from report when the canonical lexicon
// (nOld lines) and the annotated lexicon (nNew lines) disagree.
func CheckConsistency(nOld, nNew int, report ConsistencyError) error {
	if nOld == nNew {
		return nil
	}
	report.Old, report.New = nOld, nNew
	return &report
}
