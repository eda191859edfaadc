package aggregate

type CriterionStats struct {
	Name     string    `json:"name"`
	N        int       `json:"n"`
	Mean     float64   `json:"mean"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Stdev    *float64  `json:"stdev"`
	Variance *float64  `json:"variance"`
	Scores   []float64 `json:"scores"`
}

// HasSpread reports whether a sample deviation could be computed (n >= 2).
func (s CriterionStats) HasSpread() bool {
	return s.Stdev != nil
}

type CommonItem struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type Alert struct {
	Criterion string  `json:"criterion"`
	Stdev     float64 `json:"stdev"`
}

// Result is the consolidation of a whole batch of reports. It is built once and not modified afterwards.
type Result struct {
	Criteria                []string                  `json:"criteria"`
	CriterionStats          map[string]CriterionStats `json:"criterion_stats"`
	OverallScore            *float64                  `json:"overall_score"`
	OverallScoreFromReports *float64                  `json:"overall_score_from_reports"`
	CommonPositives         []CommonItem              `json:"common_positives"`
	CommonProblems          []CommonItem              `json:"common_problems"`
	Priorities              []string                  `json:"priorities"`
	Alerts                  []Alert                   `json:"alerts"`
	TotalReports            int                       `json:"total_reports"`
}

// OrderedStats returns the per-criterion stats following the sorted criterion list.
func (r *Result) OrderedStats() []CriterionStats {
	out := make([]CriterionStats, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		out = append(out, r.CriterionStats[c])
	}
	return out
}
