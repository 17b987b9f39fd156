package config

import (
	_ "embed"
)

//go:embed defaults/ecoris.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors
// defaults/ecoris.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Timing: Timing{
			CountdownSteps: 3,
			StepSeconds:    1,
			PlaySeconds:    180,
			TimesUpSeconds: 2,
			GoSeconds:      1,
		},
		Board: Board{
			Width:            4,
			Depth:            4,
			Height:           10,
			FallInterval:     1.0,
			SoftDropInterval: 0.05,
		},
		Scoring: Scoring{
			Layers: []int{100, 300, 500, 800},
		},
		Awards: []Award{
			{MinScore: 0, Title: "Seedling"},
			{MinScore: 500, Title: "Sprout"},
			{MinScore: 1500, Title: "Sapling"},
			{MinScore: 3000, Title: "Young Tree"},
			{MinScore: 6000, Title: "Forest Keeper"},
			{MinScore: 10000, Title: "Guardian of the Forest"},
		},
		Controls: Controls{
			Handedness: HandRight,
		},
		Scenes: Scenes{
			Title: "Title",
			Play:  "Main",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
