// Package config provides YAML-based board configuration loading and
// difficulty management for the snake front-ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

// Config is the complete snake configuration.
type Config struct {
	Boards     []BoardConfig    `yaml:"boards"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     RenderConfig     `yaml:"render"`
	Debug      DebugConfig      `yaml:"debug"`
}

// BoardConfig describes one playable board.
type BoardConfig struct {
	Name   string      `yaml:"name"`
	Title  string      `yaml:"title"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Snake  SnakeConfig `yaml:"snake"`
	Apples [][2]int    `yaml:"apples,omitempty"` // [row, col] pairs
}

// SnakeConfig describes the initial snake on a board.
type SnakeConfig struct {
	Length    int     `yaml:"length"`
	Direction string  `yaml:"direction"`
	Head      *[2]int `yaml:"head,omitempty"` // [row, col]; board centre when unset
}

// TimingConfig controls simulation and frame pacing.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	FPS          int           `yaml:"fps"`
}

// DifficultyConfig defines the speed-up progression.
type DifficultyConfig struct {
	Preset       DifficultyPreset `yaml:"preset"`
	SpeedupEvery int              `yaml:"speedup_every"` // Apples per speed step, 0 disables
	SpeedupStep  time.Duration    `yaml:"speedup_step"`
	MinInterval  time.Duration    `yaml:"min_interval"`
}

// RenderConfig holds front-end presentation options.
type RenderConfig struct {
	CellSize int  `yaml:"cell_size"` // Pixels per cell in the window
	Colors   bool `yaml:"colors"`
}

// DebugConfig holds debug overlays.
type DebugConfig struct {
	Grid bool `yaml:"grid"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. An empty name is normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

var (
	ErrNoBoards      = errors.New("config defines no boards")
	ErrBoardNotFound = errors.New("board not found")
)

// Board returns the named board, or the first board when name is empty.
func (c Config) Board(name string) (BoardConfig, error) {
	if len(c.Boards) == 0 {
		return BoardConfig{}, ErrNoBoards
	}
	if name == "" {
		return c.Boards[0], nil
	}
	for _, b := range c.Boards {
		if b.Name == name {
			return b, nil
		}
	}
	return BoardConfig{}, fmt.Errorf("%w: %s", ErrBoardNotFound, name)
}

// Validate checks the configuration for values the simulation cannot run with.
func (c Config) Validate() error {
	if len(c.Boards) == 0 {
		return ErrNoBoards
	}
	seen := make(map[string]bool, len(c.Boards))
	for i, b := range c.Boards {
		if b.Name == "" {
			return fmt.Errorf("board %d: name is required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("board %s: duplicate name", b.Name)
		}
		seen[b.Name] = true
		if _, err := b.Body(); err != nil {
			return fmt.Errorf("board %s: %w", b.Name, err)
		}
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval)
	}
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("timing.fps must be positive, got %d", c.Timing.FPS)
	}
	if _, err := ParseDifficultyPreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	if c.Difficulty.SpeedupEvery < 0 || c.Difficulty.SpeedupStep < 0 || c.Difficulty.MinInterval < 0 {
		return errors.New("difficulty values must not be negative")
	}
	return nil
}

// Body builds the initial snake body for the board, head first.
func (b BoardConfig) Body() ([]sim.Position, error) {
	if b.Width < 2 || b.Height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", sim.ErrInvalidSize, b.Width, b.Height)
	}
	if b.Snake.Length < 2 {
		return nil, fmt.Errorf("%w: length %d", sim.ErrBodyTooShort, b.Snake.Length)
	}
	dir, err := sim.ParseDirection(b.Snake.Direction)
	if err != nil {
		return nil, err
	}

	head := sim.Position{Row: b.Height / 2, Col: b.Width / 2}
	if b.Snake.Head != nil {
		head = sim.Position{Row: b.Snake.Head[0], Col: b.Snake.Head[1]}
	}

	body := sim.StraightBody(head, dir, b.Snake.Length)
	confines := sim.Confines{Rows: b.Height, Cols: b.Width}
	for _, p := range body {
		if !confines.Contains(p) {
			return nil, fmt.Errorf("%w: %s", sim.ErrBodyOutOfBounds, p)
		}
	}
	return body, nil
}

// ApplePositions converts the pre-placed apples to positions.
func (b BoardConfig) ApplePositions() []sim.Position {
	out := make([]sim.Position, 0, len(b.Apples))
	for _, a := range b.Apples {
		out = append(out, sim.Position{Row: a[0], Col: a[1]})
	}
	return out
}

// DisplayTitle returns the title, or the name when no title is set.
func (b BoardConfig) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return b.Name
}
