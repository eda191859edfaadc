package dto

import (
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/consolidator"
)

type ConsolidateRequest struct {
	// Raw evaluation reports, one per model run
	Messages []string `json:"messages" validate:"required,min=1" minItems:"1"`
}

type ConsolidateResponse struct {
	ID                uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	Overall           OverallStats    `json:"overall"`
	Criteria          []CriterionStat `json:"criteria"`
	CommonProblems    []CommonItem    `json:"common_problems"`
	CommonPositives   []CommonItem    `json:"common_positives"`
	Priorities        []string        `json:"priorities"`
	Alerts            []AlertItem     `json:"alerts"`
	DiagnosisMarkdown string          `json:"diagnosis_markdown"`
}

type OverallStats struct {
	MeanByCriteria      *float64 `json:"mean_by_criteria"`      // mean of per-criterion means
	MeanReportedOverall *float64 `json:"mean_reported_overall"` // mean of overall scores written in the reports
	NMessages           int      `json:"n_messages"`
}

type CriterionStat struct {
	Name   string    `json:"name"`
	N      int       `json:"n"`
	Mean   *float64  `json:"mean"`
	Min    *float64  `json:"min"`
	Max    *float64  `json:"max"`
	Stdev  *float64  `json:"stdev"`
	Scores []float64 `json:"scores"`
}

type CommonItem struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type AlertItem struct {
	Criterion string  `json:"criterion"`
	Stdev     float64 `json:"stdev"`
}

func NewConsolidateResponse(res *consolidator.Result) ConsolidateResponse {
	agg := res.Aggregate

	out := ConsolidateResponse{
		ID: res.ID,
		Overall: OverallStats{
			MeanByCriteria:      agg.OverallScore,
			MeanReportedOverall: agg.OverallScoreFromReports,
			NMessages:           agg.TotalReports,
		},
		Criteria:          make([]CriterionStat, 0, len(agg.Criteria)),
		CommonProblems:    toCommonItems(agg.CommonProblems),
		CommonPositives:   toCommonItems(agg.CommonPositives),
		Priorities:        agg.Priorities,
		Alerts:            make([]AlertItem, 0, len(agg.Alerts)),
		DiagnosisMarkdown: res.Markdown,
	}

	for _, cs := range agg.OrderedStats() {
		stat := CriterionStat{
			Name:   cs.Name,
			N:      cs.N,
			Stdev:  cs.Stdev,
			Scores: cs.Scores,
		}
		if cs.N > 0 {
			stat.Mean = ptr(cs.Mean)
			stat.Min = ptr(cs.Min)
			stat.Max = ptr(cs.Max)
		}
		out.Criteria = append(out.Criteria, stat)
	}

	for _, a := range agg.Alerts {
		out.Alerts = append(out.Alerts, AlertItem{Criterion: a.Criterion, Stdev: a.Stdev})
	}

	return out
}

func toCommonItems(items []aggregate.CommonItem) []CommonItem {
	out := make([]CommonItem, 0, len(items))
	for _, it := range items {
		out = append(out, CommonItem{Text: it.Text, Count: it.Count})
	}
	return out
}

func ptr(v float64) *float64 {
	return &v
}
