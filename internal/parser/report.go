package parser

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultMinScore = 1.0
	DefaultMaxScore = 5.0
)

// ParsedReport is what a single free-text evaluation report contributes to aggregation.
type ParsedReport struct {
	CriterionScores      map[string]float64
	OverallScoreReported *float64
	Positives            []string
	Problems             []string
	Priorities           []string
}

type Parser struct {
	vocab    *Vocabulary
	minScore float64
	maxScore float64
}

type Option func(*Parser)

func WithVocabulary(v *Vocabulary) Option {
	return func(p *Parser) {
		if v != nil {
			p.vocab = v
		}
	}
}

// WithScoreRange bounds the accepted criterion scores (inclusive).
func WithScoreRange(min, max float64) Option {
	return func(p *Parser) {
		p.minScore = min
		p.maxScore = max
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{
		vocab:    DefaultVocabulary(),
		minScore: DefaultMinScore,
		maxScore: DefaultMaxScore,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse never fails: lines it does not understand are skipped.
func (p *Parser) Parse(raw string) ParsedReport {
	out := ParsedReport{CriterionScores: make(map[string]float64)}
	cursor := newSectionCursor(p.vocab)

	for _, rawLine := range splitLines(raw) {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		p.scoreLine(line, &out)
		cursor.feed(line, &out)
	}

	return out
}

func (p *Parser) scoreLine(line string, out *ParsedReport) {
	sl, ok := MatchScoreLine(line)
	if !ok {
		return
	}

	if p.vocab.IsOverallLabel(sl.Label) {
		v := sl.Value
		out.OverallScoreReported = &v
		return
	}

	if sl.Value < p.minScore || sl.Value > p.maxScore {
		return
	}
	out.CriterionScores[sl.Label] = sl.Value
}

// ParseAll parses reports concurrently, at most limit at a time (limit <= 0 means no bound).
// The result keeps the order of the input.
func (p *Parser) ParseAll(ctx context.Context, reports []string, limit int) ([]ParsedReport, error) {
	parsed := make([]ParsedReport, len(reports))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, raw := range reports {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parsed[i] = p.Parse(raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parsed, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
