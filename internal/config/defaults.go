package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hard-coded configuration used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Boards: []BoardConfig{
			{
				Name:   "classic",
				Title:  "Classic",
				Width:  20,
				Height: 20,
				Snake: SnakeConfig{
					Length:    5,
					Direction: "left",
					Head:      &[2]int{10, 10},
				},
				Apples: [][2]int{{1, 0}, {2, 0}, {3, 0}, {4, 0}},
			},
		},
		Timing: TimingConfig{
			TickInterval: 200 * time.Millisecond,
			FPS:          60,
		},
		Difficulty: DifficultyConfig{
			Preset:       DifficultyNormal,
			SpeedupEvery: 5,
			SpeedupStep:  10 * time.Millisecond,
			MinInterval:  80 * time.Millisecond,
		},
		Render: RenderConfig{
			CellSize: 24,
			Colors:   true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
