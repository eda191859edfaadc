package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/parser"
)

func aggregateTexts(texts ...string) *Result {
	return AggregateRaw(texts, parser.New(), DefaultOptions())
}

func TestAggregate_Empty(t *testing.T) {
	r := Aggregate(nil, DefaultOptions())

	assert.Equal(t, 0, r.TotalReports)
	assert.Empty(t, r.Criteria)
	assert.Empty(t, r.CriterionStats)
	assert.Nil(t, r.OverallScore)
	assert.Nil(t, r.OverallScoreFromReports)
	assert.Empty(t, r.CommonPositives)
	assert.Empty(t, r.CommonProblems)
	assert.Empty(t, r.Priorities)
	assert.Empty(t, r.Alerts)
}

func TestAggregate_PartialCoverage(t *testing.T) {
	r := aggregateTexts(
		"Contraste: 4\nCores: 3",
		"Cores: 4",
		"Contraste: 5\nCores: 5",
	)

	assert.Equal(t, 3, r.TotalReports)
	assert.Equal(t, []string{"Contraste", "Cores"}, r.Criteria)

	c := r.CriterionStats["Contraste"]
	assert.Equal(t, 2, c.N)
	assert.Equal(t, []float64{4, 5}, c.Scores)
	assert.InDelta(t, 4.5, c.Mean, 1e-9)
	assert.Equal(t, 4.0, c.Min)
	assert.Equal(t, 5.0, c.Max)
	require.NotNil(t, c.Stdev)
	assert.Greater(t, *c.Stdev, 0.0)
	require.NotNil(t, c.Variance)
	assert.InDelta(t, 0.5, *c.Variance, 1e-9)

	cores := r.CriterionStats["Cores"]
	assert.Equal(t, 3, cores.N)
	assert.InDelta(t, 4.0, cores.Mean, 1e-9)

	require.NotNil(t, r.OverallScore)
	assert.InDelta(t, 4.25, *r.OverallScore, 1e-9)
}

func TestAggregate_SingleObservationHasNoSpread(t *testing.T) {
	r := aggregateTexts("Contraste: 4")

	c := r.CriterionStats["Contraste"]
	assert.Equal(t, 1, c.N)
	assert.Nil(t, c.Stdev)
	assert.Nil(t, c.Variance)
	assert.False(t, c.HasSpread())
	assert.Empty(t, r.Alerts)
}

func TestAggregate_OverallScoresStayIndependent(t *testing.T) {
	r := aggregateTexts(
		"Contraste: 2\nPontuação Geral: 5",
		"Contraste: 2",
		"Contraste: 2\nPontuação Geral: 4",
	)

	require.NotNil(t, r.OverallScore)
	assert.InDelta(t, 2.0, *r.OverallScore, 1e-9)
	require.NotNil(t, r.OverallScoreFromReports)
	assert.InDelta(t, 4.5, *r.OverallScoreFromReports, 1e-9)
	assert.NotContains(t, r.Criteria, "Pontuação Geral")
}

func TestAggregate_OverallFromReportsAbsent(t *testing.T) {
	r := aggregateTexts("Contraste: 3")
	assert.Nil(t, r.OverallScoreFromReports)
}

func TestAggregate_NoCriteriaMeansNoOverall(t *testing.T) {
	r := aggregateTexts("Pontuação Geral: 4", "texto solto")
	assert.Nil(t, r.OverallScore)
	require.NotNil(t, r.OverallScoreFromReports)
	assert.Equal(t, 4.0, *r.OverallScoreFromReports)
	assert.Equal(t, 2, r.TotalReports)
}

func TestAggregate_DivergenceAlerts(t *testing.T) {
	r := aggregateTexts(
		"Contraste: 1\nCores: 4\nÍcones: 2",
		"Contraste: 5\nCores: 4\nÍcones: 4",
	)

	require.Len(t, r.Alerts, 2)
	assert.Equal(t, "Contraste", r.Alerts[0].Criterion)
	assert.InDelta(t, 2*math.Sqrt2, r.Alerts[0].Stdev, 1e-9)
	assert.Equal(t, "Ícones", r.Alerts[1].Criterion)
	assert.InDelta(t, math.Sqrt2, r.Alerts[1].Stdev, 1e-9)

	for _, a := range r.Alerts {
		assert.NotEqual(t, "Cores", a.Criterion)
	}
	require.NotNil(t, r.CriterionStats["Cores"].Stdev)
	assert.Zero(t, *r.CriterionStats["Cores"].Stdev)
}

func TestAggregate_AlertsCapped(t *testing.T) {
	low := "A: 1\nB: 1\nC: 1\nD: 1\nE: 1\nF: 1\nG: 2"
	high := "A: 5\nB: 5\nC: 5\nD: 5\nE: 5\nF: 5\nG: 4"
	r := aggregateTexts(low, high)

	assert.Len(t, r.Alerts, DefaultMaxAlerts)
	for _, a := range r.Alerts {
		assert.NotEqual(t, "G", a.Criterion)
	}
	assert.Equal(t, "A", r.Alerts[0].Criterion, "ties keep criterion order")
}

func TestAggregate_CustomOptions(t *testing.T) {
	opts := Options{DivergenceThreshold: 3, MaxAlerts: 1, MaxItems: 1}
	r := AggregateRaw([]string{
		"Contraste: 1\nPontos Positivos:\n- A\n- B",
		"Contraste: 5",
	}, parser.New(), opts)

	assert.Empty(t, r.Alerts)
	assert.Equal(t, []CommonItem{{Text: "A", Count: 1}}, r.CommonPositives)
}

func TestAggregate_Deduplication(t *testing.T) {
	r := aggregateTexts(
		"Principais Problemas:\n- Falta contraste\n- Botões pequenos",
		"Principais Problemas:\n- Botões pequenos!\n- falta   contraste\n- Falta contraste.",
	)

	assert.Equal(t, []CommonItem{
		{Text: "Falta contraste", Count: 3},
		{Text: "Botões pequenos", Count: 2},
	}, r.CommonProblems)
}

func TestAggregate_RankingIsStable(t *testing.T) {
	r := aggregateTexts(
		"Pontos Positivos:\n- Ícones\n- Layout\n- Cores",
		"Pontos Positivos:\n- Cores",
	)

	assert.Equal(t, []CommonItem{
		{Text: "Cores", Count: 2},
		{Text: "Ícones", Count: 1},
		{Text: "Layout", Count: 1},
	}, r.CommonPositives)
}

func TestAggregate_PrioritiesKeepInsertionOrder(t *testing.T) {
	r := aggregateTexts(
		"Prioridades de Correção:\n1. Aumentar contraste\n2. Reduzir texto",
		"Prioridades de Correção:\n1. Reduzir texto\n2. Aumentar CONTRASTE\n3. Revisar ícones",
	)

	assert.Equal(t, []string{"Aumentar contraste", "Reduzir texto", "Revisar ícones"}, r.Priorities)
}

func TestAggregate_ItemsCapped(t *testing.T) {
	report := "Pontos Positivos:\n"
	for i := 0; i < 15; i++ {
		report += "- item " + string(rune('a'+i)) + "\n"
	}
	r := aggregateTexts(report)
	assert.Len(t, r.CommonPositives, DefaultMaxItems)
}

func TestItemKey(t *testing.T) {
	assert.Equal(t, ItemKey("Falta contraste"), ItemKey("  falta   CONTRASTE. "))
	assert.Equal(t, "ação rápida", ItemKey("Ação — rápida!"))
	assert.Equal(t, "contraste 45", ItemKey("Contraste 4,5"))
	assert.Equal(t, "", ItemKey("✅ !!"))
	assert.Equal(t, "falta contraste", ItemKey("Falta\u00a0contraste"))
	assert.Equal(t, "señal pequeña", ItemKey("Señal\u2003pequeña."))
	assert.Equal(t, "übersicht", ItemKey("Übersicht!"))
}

func TestAggregate_DeduplicationAcrossUnicodeSpaces(t *testing.T) {
	r := aggregateTexts(
		"Principais Problemas:\n- Falta\u00a0contraste",
		"Principais Problemas:\n- Falta contraste",
	)

	require.Len(t, r.CommonProblems, 1)
	assert.Equal(t, 2, r.CommonProblems[0].Count)
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{DivergenceThreshold: -1}.Validate())
	assert.Error(t, Options{MaxAlerts: -1}.Validate())
	assert.Error(t, Options{MaxItems: -2}.Validate())
}

func TestResult_OrderedStats(t *testing.T) {
	r := aggregateTexts("Zoom: 3\nAcesso: 4")
	stats := r.OrderedStats()
	require.Len(t, stats, 2)
	assert.Equal(t, "Acesso", stats[0].Name)
	assert.Equal(t, "Zoom", stats[1].Name)
}
