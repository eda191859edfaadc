package aggregate

import "github.com/montanaflynn/stats"

// computeStats expects at least one score; criteria only exist once observed.
func computeStats(name string, scores []float64) CriterionStats {
	cs := CriterionStats{
		Name:   name,
		N:      len(scores),
		Scores: scores,
	}
	if len(scores) == 0 {
		return cs
	}

	cs.Mean, _ = stats.Mean(scores)
	cs.Min, _ = stats.Min(scores)
	cs.Max, _ = stats.Max(scores)

	// A single observation has no sample spread; leave it absent rather than 0.
	if len(scores) >= 2 {
		if v, err := stats.SampleVariance(scores); err == nil {
			cs.Variance = &v
		}
		if sd, err := stats.StandardDeviationSample(scores); err == nil {
			cs.Stdev = &sd
		}
	}

	return cs
}

func meanOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return &m
}
