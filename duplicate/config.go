package duplicate

// Config holds the thresholds and weights SuggestMerges scores
// candidates with. Grounded on the teacher's DuplicateConfig, trimmed
// to the fields that make sense for an in-memory Person Graph (no
// parallel-processing or cross-file matching knobs, since this detector
// never needs to scale past one graph held entirely in memory).
type Config struct {
	// MinScore is the minimum weighted similarity to report as a
	// suggestion at all.
	MinScore float64
	// NameWeight, BirthYearWeight, and GenderWeight must sum to 1.0 for
	// the resulting score to land in [0, 1].
	NameWeight      float64
	BirthYearWeight float64
	GenderWeight    float64
	// BirthYearTolerance is how many years apart two birth years may be
	// and still count as a partial match.
	BirthYearTolerance int
	// BirthYearBucket is the bucket width used for blocking (candidates
	// outside the same bucket are never compared).
	BirthYearBucket int
}

// DefaultConfig returns the weights used when no Config is supplied.
func DefaultConfig() *Config {
	return &Config{
		MinScore:           0.60,
		NameWeight:         0.60,
		BirthYearWeight:    0.30,
		GenderWeight:       0.10,
		BirthYearTolerance: 2,
		BirthYearBucket:    5,
	}
}
