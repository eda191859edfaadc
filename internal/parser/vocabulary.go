package parser

import "strings"

// Vocabulary holds the header names and overall-score phrases a parser recognizes.
// Keys are compared lower-cased with collapsed whitespace.
type Vocabulary struct {
	sections       map[string]Section
	overallPhrases []string
}

var defaultSectionHeaders = map[string]Section{
	"resumo executivo":  NoSection,
	"executive summary": NoSection,

	"pontos positivos": InPositives,
	"positives":        InPositives,
	"strengths":        InPositives,

	"principais problemas": InProblems,
	"problemas":            InProblems,
	"problems":             InProblems,
	"main problems":        InProblems,

	"prioridades de correção": InPriorities,
	"prioridade de correção":  InPriorities,
	"prioridades de correcao": InPriorities,
	"correções prioritárias":  InPriorities,
	"priorities":              InPriorities,
	"fix priorities":          InPriorities,

	"pontuação geral":                   InOverallScoreSection,
	"pontuacao geral":                   InOverallScoreSection,
	"pontuação geral de acessibilidade": InOverallScoreSection,
	"overall score":                     InOverallScoreSection,
	"general score":                     InOverallScoreSection,
}

var defaultOverallPhrases = []string{
	"pontuação geral",
	"pontuacao geral",
	"overall score",
	"general score",
}

func DefaultVocabulary() *Vocabulary {
	v := &Vocabulary{
		sections:       make(map[string]Section, len(defaultSectionHeaders)),
		overallPhrases: append([]string(nil), defaultOverallPhrases...),
	}
	for k, s := range defaultSectionHeaders {
		v.sections[k] = s
	}
	return v
}

// AddHeader registers an extra header alias for a section.
func (v *Vocabulary) AddHeader(alias string, sec Section) {
	key := headerKey(alias)
	if key == "" {
		return
	}
	v.sections[key] = sec
}

// AddOverallPhrase registers an extra phrase that marks a score line as the reported overall score.
func (v *Vocabulary) AddOverallPhrase(phrase string) {
	p := strings.ToLower(collapseSpaces(phrase))
	if p == "" {
		return
	}
	v.overallPhrases = append(v.overallPhrases, p)
}

// IsOverallLabel reports whether a normalized label names an overall score.
func (v *Vocabulary) IsOverallLabel(label string) bool {
	l := strings.ToLower(label)
	for _, p := range v.overallPhrases {
		if strings.Contains(l, p) {
			return true
		}
	}
	return false
}
