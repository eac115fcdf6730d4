package eigen

// Private hooks re-exported for white-box tests only.
var (
	DelimitSubproblemForTest = delimitSubproblem
	QRSweepForTest           = qrSweep
)
