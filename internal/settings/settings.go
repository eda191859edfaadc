package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/eval-consolidator/internal/aggregate"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/parser"
	"github.com/DjordjeVuckovic/eval-consolidator/internal/report"
)

type ScoreRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Settings tunes consolidation. Anything left out of the YAML file keeps its default.
type Settings struct {
	Aggregation aggregate.Options `yaml:"aggregation"`
	Render      report.Options    `yaml:"render"`
	Scores      ScoreRange        `yaml:"scores"`
	// Parallelism bounds concurrent report parsing.
	Parallelism int `yaml:"parallelism"`
	// Sections maps a section name (positives, problems, priorities, overall, none) to extra header aliases.
	Sections       map[string][]string `yaml:"sections"`
	OverallPhrases []string            `yaml:"overall_phrases"`
}

func Default() *Settings {
	return &Settings{
		Aggregation: aggregate.DefaultOptions(),
		Render:      report.DefaultOptions(),
		Scores:      ScoreRange{Min: parser.DefaultMinScore, Max: parser.DefaultMaxScore},
		Parallelism: runtime.NumCPU(),
	}
}

func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Settings, error) {
	s := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse settings YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if err := s.Aggregation.Validate(); err != nil {
		return fmt.Errorf("aggregation: %w", err)
	}
	if s.Scores.Min > s.Scores.Max {
		return fmt.Errorf("scores: min %v is greater than max %v", s.Scores.Min, s.Scores.Max)
	}
	if s.Parallelism < 0 {
		return errors.New("parallelism must not be negative")
	}
	for name := range s.Sections {
		if _, err := parser.ParseSection(name); err != nil {
			return fmt.Errorf("sections: %w", err)
		}
	}
	return nil
}

// Vocabulary returns the default vocabulary extended with the configured aliases.
func (s *Settings) Vocabulary() *parser.Vocabulary {
	v := parser.DefaultVocabulary()
	for name, aliases := range s.Sections {
		sec, err := parser.ParseSection(name)
		if err != nil {
			continue
		}
		for _, alias := range aliases {
			v.AddHeader(alias, sec)
		}
	}
	for _, p := range s.OverallPhrases {
		v.AddOverallPhrase(p)
	}
	return v
}

func (s *Settings) NewParser() *parser.Parser {
	return parser.New(
		parser.WithVocabulary(s.Vocabulary()),
		parser.WithScoreRange(s.Scores.Min, s.Scores.Max),
	)
}
