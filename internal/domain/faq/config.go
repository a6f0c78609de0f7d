package faq

// IndexKind selects the nearest-neighbour strategy.
type IndexKind string

const (
	IndexLinear IndexKind = "linear"
	IndexLSH    IndexKind = "lsh"
)

// Config holds runtime knobs for retrieval.
type Config struct {
	HighThreshold float64
	LowThreshold  float64
	Index         IndexKind
	LSHPlanes     int
}

// Classify maps a similarity score to its confidence band. High is
// inclusive, Low is inclusive, anything below Low is no match.
func (c Config) Classify(score float64) Band {
	switch {
	case score >= c.HighThreshold:
		return BandHigh
	case score >= c.LowThreshold:
		return BandLow
	default:
		return BandNone
	}
}
