package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/consolidator"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/parser"
)

func TestNewConsolidateResponse(t *testing.T) {
	agg := aggregate.AggregateRaw([]string{
		"Contraste: 1\nCores: 4\nPrincipais Problemas:\n- Falta contraste",
		"Contraste: 5\nPontuação Geral: 3",
	}, parser.New(), aggregate.DefaultOptions())
	id := uuid.New()

	resp := NewConsolidateResponse(&consolidator.Result{ID: id, Aggregate: agg, Markdown: "# doc"})

	assert.Equal(t, id, resp.ID)
	assert.Equal(t, 2, resp.Overall.NMessages)
	require.NotNil(t, resp.Overall.MeanByCriteria)
	assert.InDelta(t, 3.5, *resp.Overall.MeanByCriteria, 1e-9)
	require.NotNil(t, resp.Overall.MeanReportedOverall)
	assert.Equal(t, 3.0, *resp.Overall.MeanReportedOverall)

	require.Len(t, resp.Criteria, 2)
	assert.Equal(t, "Contraste", resp.Criteria[0].Name)
	assert.Equal(t, []float64{1, 5}, resp.Criteria[0].Scores)
	assert.Nil(t, resp.Criteria[1].Stdev)

	assert.Equal(t, []CommonItem{{Text: "Falta contraste", Count: 1}}, resp.CommonProblems)
	assert.Empty(t, resp.CommonPositives)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "Contraste", resp.Alerts[0].Criterion)
	assert.Equal(t, "# doc", resp.DiagnosisMarkdown)
}

func TestConsolidateResponse_AbsentValuesAreNull(t *testing.T) {
	agg := aggregate.AggregateRaw([]string{"Contraste: 4"}, parser.New(), aggregate.DefaultOptions())
	resp := NewConsolidateResponse(&consolidator.Result{Aggregate: agg})

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	overall := decoded["overall"].(map[string]any)
	assert.Nil(t, overall["mean_reported_overall"])
	assert.Contains(t, overall, "mean_reported_overall")

	criteria := decoded["criteria"].([]any)
	first := criteria[0].(map[string]any)
	assert.Nil(t, first["stdev"])
	assert.Equal(t, 4.0, first["mean"])

	assert.Equal(t, []any{}, decoded["common_positives"])
}
