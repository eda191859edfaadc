package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
)

const (
	DefaultTitle    = "Relatório Consolidado de Avaliação"
	DefaultScaleMax = 5.0
	maxListed       = 10
)

var leadingNumber = regexp.MustCompile(`^\s*\d+\.\s*`)

type Options struct {
	Title string `yaml:"title"`
	// ScaleMax is the top of the score scale printed after global scores. It follows the parser's score range.
	ScaleMax float64 `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{Title: DefaultTitle, ScaleMax: DefaultScaleMax}
}

// Markdown renders the consolidated diagnosis. The output depends only on the
// result and options, so equal inputs always give byte-identical documents.
func Markdown(r *aggregate.Result, opts Options) string {
	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	scale := opts.ScaleMax
	if scale <= 0 {
		scale = DefaultScaleMax
	}

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("# %s\n", title)

	add("## 📊 Resultados Quantitativos\n")
	add("> **n (amostra)** = quantidade de avaliações que continham este critério após o parse.\n" +
		"> Se algum critério não aparecer em todas as avaliações, o **n** dele será menor.\n")

	add("| Critério Avaliado | n (amostra) | Cobertura | Média | Mín | Máx | Desvio Padrão |")
	add("|---|---:|---:|---:|---:|---:|---:|")
	for _, cs := range r.OrderedStats() {
		add("| %s | %d | %d/%d | %s | %s | %s | %s |",
			cs.Name,
			cs.N,
			cs.N, r.TotalReports,
			FormatDecimal(cs.Mean),
			FormatDecimal(cs.Min),
			FormatDecimal(cs.Max),
			FormatOptional(cs.Stdev),
		)
	}

	add("\n## ⭐ Pontuação Global\n")
	add("- **Global (média das médias por critério):** %s / %s", FormatOptional(r.OverallScore), FormatDecimal(scale))
	if r.OverallScoreFromReports != nil {
		add("- **Global (média das 'Pontuações Gerais' reportadas):** %s / %s", FormatOptional(r.OverallScoreFromReports), FormatDecimal(scale))
	}

	if len(r.Alerts) > 0 {
		add("\n## ⚠️ Alertas (alta divergência entre avaliações)\n")
		for _, a := range r.Alerts {
			add("- **%s** — desvio padrão: %s", a.Criterion, FormatDecimal(a.Stdev))
		}
	}

	if len(r.CommonPositives) > 0 {
		add("\n## ✅ Pontos Positivos (agregados)\n")
		for _, it := range capList(r.CommonPositives) {
			add("- %s", it.Text)
		}
	}

	if len(r.CommonProblems) > 0 {
		add("\n## ❌ Principais Problemas (agregados)\n")
		for _, it := range capList(r.CommonProblems) {
			add("- %s", it.Text)
		}
	}

	if len(r.Priorities) > 0 {
		add("\n## 🔧 Prioridades de Correção (agregadas)\n")
		for i, it := range capList(r.Priorities) {
			add("%d. %s", i+1, strings.TrimSpace(leadingNumber.ReplaceAllString(it, "")))
		}
	}

	return strings.Join(lines, "\n")
}

func capList[T any](s []T) []T {
	if len(s) > maxListed {
		return s[:maxListed]
	}
	return s
}
