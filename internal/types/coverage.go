package types

// CoverageReport partitions an effective keyword set against one CV's
// content. Ratio is |present| / |present+missing| in [0, 1]; an empty
// keyword set scores 1.0 by convention (nothing was asked for, so nothing
// is missing). Reports are owned by the caller and never cached.
type CoverageReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
	Ratio   float64  `json:"ratio"`
}

// Total returns the size of the scored keyword set.
func (r CoverageReport) Total() int {
	return len(r.Present) + len(r.Missing)
}
