// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/ecoris/internal/mode"
)

// Config contains all configuration for Ecoris.
type Config struct {
	Timing   Timing   `yaml:"timing"`
	Board    Board    `yaml:"board"`
	Scoring  Scoring  `yaml:"scoring"`
	Awards   []Award  `yaml:"awards"`
	Controls Controls `yaml:"controls"`
	Scenes   Scenes   `yaml:"scenes"`
}

// Timing defines the phase durations of a game.
type Timing struct {
	CountdownSteps int     `yaml:"countdown_steps"`
	StepSeconds    float64 `yaml:"step_seconds"`
	PlaySeconds    float64 `yaml:"play_seconds"`
	TimesUpSeconds float64 `yaml:"times_up_seconds"`
	GoSeconds      float64 `yaml:"go_seconds"`
}

// Board defines the well dimensions and gravity.
type Board struct {
	Width            int     `yaml:"width"`
	Depth            int     `yaml:"depth"`
	Height           int     `yaml:"height"`
	FallInterval     float64 `yaml:"fall_interval"`
	SoftDropInterval float64 `yaml:"soft_drop_interval"`
}

// Scoring defines points per number of layers cleared at once.
type Scoring struct {
	Layers []int `yaml:"layers"`
}

// Award is a title granted for reaching MinScore.
type Award struct {
	MinScore int    `yaml:"min_score"`
	Title    string `yaml:"title"`
}

// Handedness selects which hand moves the piece.
type Handedness string

const (
	HandRight Handedness = "right"
	HandLeft  Handedness = "left"
)

// Controls defines input preferences.
type Controls struct {
	Handedness Handedness `yaml:"handedness"`
}

// Scenes names the scenes the game switches between.
type Scenes struct {
	Title string `yaml:"title"`
	Play  string `yaml:"play"`
}

// Mode converts the timing and scoring sections for the mode controller.
func (c Config) Mode() mode.Config {
	return mode.Config{
		CountdownSteps: c.Timing.CountdownSteps,
		StepSeconds:    c.Timing.StepSeconds,
		PlaySeconds:    c.Timing.PlaySeconds,
		TimesUpSeconds: c.Timing.TimesUpSeconds,
		GoSeconds:      c.Timing.GoSeconds,
		TitleScene:     c.Scenes.Title,
		ScoreTable:     append([]int(nil), c.Scoring.Layers...),
	}
}

// Validate reports impossible values.
func (c Config) Validate() error {
	if err := c.Mode().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	b := c.Board
	switch {
	case b.Width < 2 || b.Depth < 2:
		return fmt.Errorf("config: board floor must be at least 2x2, got %dx%d", b.Width, b.Depth)
	case b.Height < 4:
		return fmt.Errorf("config: board height must be at least 4, got %d", b.Height)
	case b.FallInterval <= 0:
		return fmt.Errorf("config: fall interval must be positive, got %v", b.FallInterval)
	case b.SoftDropInterval <= 0:
		return fmt.Errorf("config: soft drop interval must be positive, got %v", b.SoftDropInterval)
	}

	switch c.Controls.Handedness {
	case HandRight, HandLeft:
	default:
		return fmt.Errorf("config: unknown handedness %q", c.Controls.Handedness)
	}

	if c.Scenes.Play == "" {
		return fmt.Errorf("config: play scene is required")
	}
	for i := 1; i < len(c.Awards); i++ {
		if c.Awards[i].MinScore <= c.Awards[i-1].MinScore {
			return fmt.Errorf("config: awards must be sorted by ascending min_score (%q)", c.Awards[i].Title)
		}
	}
	return nil
}
