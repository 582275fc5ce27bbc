// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package surveyconf

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/aita-judge/judgment"
)

//go:embed default_survey.yaml
var defaultSurvey []byte

// Policy defaults, applied when the YAML leaves a knob unset.
const (
	DefaultTolerance     = 0.20
	DefaultSimilarBand   = 5.0
	DefaultHighAlignment = 60.0
	DefaultLowAlignment  = 30.0
	DefaultSinkDelayMS   = 50
)

// Config is the survey definition: classifier policy knobs, the category
// scale, the submission-sink field mapping, and the embedded study
// questions.
type Config struct {
	// Scale selects the category set for the live survey.
	Scale string `yaml:"scale" validate:"omitempty,oneof=five_way three_way"`

	// Tolerance is the relative-judgment band. The historical variants
	// disagreed between 0.15 and 0.20; this service settles on 0.20.
	Tolerance float64 `yaml:"tolerance" validate:"omitempty,gt=0,lt=1"`

	// SimilarBandPercent is the profile-comparison band within which usage
	// counts as "similar to" the reference population.
	SimilarBandPercent float64 `yaml:"similar_band_percent" validate:"omitempty,gt=0,lte=100"`

	// Alignment qualifier thresholds.
	HighAlignmentPercent float64 `yaml:"high_alignment_percent" validate:"omitempty,gt=0,lte=100"`
	LowAlignmentPercent  float64 `yaml:"low_alignment_percent" validate:"omitempty,gt=0,lte=100"`

	Sink  SinkConfig      `yaml:"sink"`
	Study []StudyQuestion `yaml:"study" validate:"dive"`
}

// SinkConfig maps submission fields onto a form-collection endpoint. An
// empty ActionURL disables forwarding entirely.
type SinkConfig struct {
	ActionURL string            `yaml:"action_url" validate:"omitempty,url"`
	DelayMS   int               `yaml:"delay_ms" validate:"min=0,max=10000"`
	Entries   map[string]string `yaml:"entries"`
}

// StudyQuestion is one embedded three-way scenario with its reference
// population tallies (population -> category -> count).
type StudyQuestion struct {
	Name        string                    `yaml:"name" validate:"required,min=1,max=100"`
	Prompt      string                    `yaml:"prompt"`
	Populations map[string]map[string]int `yaml:"populations" validate:"required,min=1"`
}

// Load reads the survey config from path, or the embedded default when
// path is empty, applies defaults, and validates it.
func Load(path string) (Config, error) {
	data := defaultSurvey
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading survey config: %w", err)
		}
		data = fileData
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing survey config: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid survey config: %w", err)
	}
	if cfg.LowAlignmentPercent >= cfg.HighAlignmentPercent {
		return Config{}, fmt.Errorf("low_alignment_percent %.1f must be below high_alignment_percent %.1f",
			cfg.LowAlignmentPercent, cfg.HighAlignmentPercent)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Scale == "" {
		c.Scale = "five_way"
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.SimilarBandPercent == 0 {
		c.SimilarBandPercent = DefaultSimilarBand
	}
	if c.HighAlignmentPercent == 0 {
		c.HighAlignmentPercent = DefaultHighAlignment
	}
	if c.LowAlignmentPercent == 0 {
		c.LowAlignmentPercent = DefaultLowAlignment
	}
	if c.Sink.DelayMS == 0 {
		c.Sink.DelayMS = DefaultSinkDelayMS
	}
}

// CategorySet returns the judgment scale selected by Scale.
func (c Config) CategorySet() judgment.Set {
	if c.Scale == "three_way" {
		return judgment.ThreeWay
	}
	return judgment.FiveWay
}
