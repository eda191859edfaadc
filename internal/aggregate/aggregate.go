package aggregate

import (
	"sort"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/parser"
)

// Aggregate combines parsed reports, in their original order, into one Result.
// An empty batch is valid and yields an empty result.
func Aggregate(reports []parser.ParsedReport, opts Options) *Result {
	opts = opts.withDefaults()

	r := &Result{
		Criteria:        []string{},
		CriterionStats:  make(map[string]CriterionStats),
		CommonPositives: []CommonItem{},
		CommonProblems:  []CommonItem{},
		Priorities:      []string{},
		Alerts:          []Alert{},
		TotalReports:    len(reports),
	}

	perCriterion := make(map[string][]float64)
	var reportedOverall []float64

	for _, pr := range reports {
		for label, score := range pr.CriterionScores {
			perCriterion[label] = append(perCriterion[label], score)
		}
		if pr.OverallScoreReported != nil {
			reportedOverall = append(reportedOverall, *pr.OverallScoreReported)
		}
	}

	for label := range perCriterion {
		r.Criteria = append(r.Criteria, label)
	}
	sort.Strings(r.Criteria)

	means := make([]float64, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		cs := computeStats(c, perCriterion[c])
		r.CriterionStats[c] = cs
		if cs.N > 0 {
			means = append(means, cs.Mean)
		}
	}

	r.OverallScore = meanOf(means)
	r.OverallScoreFromReports = meanOf(reportedOverall)

	r.CommonPositives, r.CommonProblems, r.Priorities = qualitative(reports, opts.MaxItems)
	r.Alerts = alerts(r, opts)

	return r
}

// AggregateRaw parses each report sequentially and aggregates the batch.
func AggregateRaw(raw []string, p *parser.Parser, opts Options) *Result {
	parsed := make([]parser.ParsedReport, 0, len(raw))
	for _, text := range raw {
		parsed = append(parsed, p.Parse(text))
	}
	return Aggregate(parsed, opts)
}

func qualitative(reports []parser.ParsedReport, limit int) ([]CommonItem, []CommonItem, []string) {
	positives := newItemCounter()
	problems := newItemCounter()
	priorities := newItemCounter()

	for _, pr := range reports {
		for _, it := range pr.Positives {
			positives.add(it)
		}
		for _, it := range pr.Problems {
			problems.add(it)
		}
		for _, it := range pr.Priorities {
			priorities.add(it)
		}
	}

	return positives.ranked(limit), problems.ranked(limit), priorities.firstSeen(limit)
}

func alerts(r *Result, opts Options) []Alert {
	out := []Alert{}
	for _, c := range r.Criteria {
		cs := r.CriterionStats[c]
		if !cs.HasSpread() || *cs.Stdev < opts.DivergenceThreshold {
			continue
		}
		out = append(out, Alert{Criterion: c, Stdev: *cs.Stdev})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Stdev > out[j].Stdev })
	return truncate(out, opts.MaxAlerts)
}
