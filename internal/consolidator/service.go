package consolidator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/apperr"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/parser"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/report"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/settings"
)

// EmptyBatchMessage is returned for a call without reports.
const EmptyBatchMessage = "messages list is empty"

type Result struct {
	ID        uuid.UUID
	Aggregate *aggregate.Result
	Markdown  string
}

type Service struct {
	parser      *parser.Parser
	aggregation aggregate.Options
	render      report.Options
	parallelism int
}

func New(cfg *settings.Settings) *Service {
	if cfg == nil {
		cfg = settings.Default()
	}
	render := cfg.Render
	render.ScaleMax = cfg.Scores.Max

	return &Service{
		parser:      cfg.NewParser(),
		aggregation: cfg.Aggregation,
		render:      render,
		parallelism: cfg.Parallelism,
	}
}

// Consolidate turns a non-empty batch of raw reports into an aggregate and its Markdown diagnosis.
func (s *Service) Consolidate(ctx context.Context, messages []string) (*Result, error) {
	if len(messages) == 0 {
		return nil, apperr.NewValidation(EmptyBatchMessage)
	}

	parsed, err := s.parser.ParseAll(ctx, messages, s.parallelism)
	if err != nil {
		return nil, fmt.Errorf("parse reports: %w", err)
	}

	agg := aggregate.Aggregate(parsed, s.aggregation)
	res := &Result{
		ID:        uuid.New(),
		Aggregate: agg,
		Markdown:  report.Markdown(agg, s.render),
	}

	slog.Debug("Consolidated reports",
		"id", res.ID,
		"reports", agg.TotalReports,
		"criteria", len(agg.Criteria),
		"alerts", len(agg.Alerts),
	)

	return res, nil
}

func (s *Service) Title() string {
	return s.render.Title
}
