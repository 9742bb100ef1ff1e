package datemath

// DueDate is a resolved calendar date with a heuristic confidence score.
type DueDate struct {
	ISODate    string  // YYYY-MM-DD
	Confidence float64 // 0..1, not a calibrated probability
}
