package consolidator

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/apperr"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/settings"
)

func TestService_Consolidate(t *testing.T) {
	svc := New(nil)

	res, err := svc.Consolidate(context.Background(), []string{
		"Contraste: 4\nPontos Positivos:\n- Ícones claros",
		"Cores: 3",
		"Contraste: 5\nPontos Positivos:\n- ícones claros",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, 3, res.Aggregate.TotalReports)
	assert.Equal(t, []string{"Contraste", "Cores"}, res.Aggregate.Criteria)
	assert.Equal(t, 2, res.Aggregate.CriterionStats["Contraste"].N)
	assert.Equal(t, 2, res.Aggregate.CommonPositives[0].Count)
	assert.Contains(t, res.Markdown, "| Contraste | 2 | 2/3 | 4,5 | 4,0 | 5,0 | 0,7 |")
}

func TestService_Consolidate_EmptyBatch(t *testing.T) {
	_, err := New(nil).Consolidate(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestService_Consolidate_DeterministicMarkdown(t *testing.T) {
	svc := New(nil)
	batch := []string{"B: 2\nA: 4", "A: 1\nProblemas:\n- x"}

	first, err := svc.Consolidate(context.Background(), batch)
	require.NoError(t, err)
	second, err := svc.Consolidate(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, first.Markdown, second.Markdown)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Consolidate_UsesSettings(t *testing.T) {
	cfg, err := settings.Parse([]byte("render:\n  title: Relatório Dislexia\nparallelism: 1\n"))
	require.NoError(t, err)

	svc := New(cfg)
	res, err := svc.Consolidate(context.Background(), []string{"Contraste: 4"})
	require.NoError(t, err)

	assert.Equal(t, "Relatório Dislexia", svc.Title())
	assert.Contains(t, res.Markdown, "# Relatório Dislexia")
}

func TestService_Consolidate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Consolidate(ctx, []string{"Contraste: 4"})
	require.Error(t, err)
	assert.False(t, apperr.IsValidation(err))
}

func TestService_Consolidate_ScaleFollowsScoreRange(t *testing.T) {
	cfg := settings.Default()
	cfg.Scores = settings.ScoreRange{Min: 0, Max: 10}

	res, err := New(cfg).Consolidate(context.Background(), []string{"Contraste: 8"})
	require.NoError(t, err)
	assert.Contains(t, res.Markdown, "8,0 / 10,0")
}
