package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

func TestEmbeddedDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if len(cfg.Boards) == 0 {
		t.Fatal("embedded config should define boards")
	}
	if cfg.Timing.TickInterval != 200*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 200ms", cfg.Timing.TickInterval)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := `
boards:
  - name: tiny
    width: 4
    height: 3
    snake:
      length: 2
      direction: right
      head: [1, 2]
    apples:
      - [0, 0]
timing:
  tick_interval: 150ms
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.TickInterval != 150*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 150ms", cfg.Timing.TickInterval)
	}
	if cfg.Timing.FPS != 60 {
		t.Errorf("FPS = %d, expected default 60", cfg.Timing.FPS)
	}

	b, err := cfg.Board("tiny")
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	body, err := b.Body()
	if err != nil {
		t.Fatalf("Body() error = %v", err)
	}
	expected := []sim.Position{{Row: 1, Col: 2}, {Row: 1, Col: 1}}
	if len(body) != 2 || body[0] != expected[0] || body[1] != expected[1] {
		t.Errorf("Body() = %v, expected %v", body, expected)
	}
	if apples := b.ApplePositions(); len(apples) != 1 || apples[0] != (sim.Position{}) {
		t.Errorf("ApplePositions() = %v, expected [(0,0)]", apples)
	}
	if b.DisplayTitle() != "tiny" {
		t.Errorf("DisplayTitle() = %q, expected name fallback", b.DisplayTitle())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("Load() error = %v, expected read failure", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("boards: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	board := func(mod func(*BoardConfig)) Config {
		cfg := Default()
		b := cfg.Boards[0]
		b.Snake.Head = nil
		mod(&b)
		cfg.Boards = []BoardConfig{b}
		return cfg
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", board(func(*BoardConfig) {}), nil},
		{"too narrow", board(func(b *BoardConfig) { b.Width = 1 }), sim.ErrInvalidSize},
		{"too short", board(func(b *BoardConfig) { b.Snake.Length = 1 }), sim.ErrBodyTooShort},
		{"too long", board(func(b *BoardConfig) { b.Snake.Length = 15 }), sim.ErrBodyOutOfBounds},
		{"head off grid", board(func(b *BoardConfig) { b.Snake.Head = &[2]int{-1, 0} }), sim.ErrBodyOutOfBounds},
		{"no boards", Config{Timing: Default().Timing}, ErrNoBoards},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	dup := Default()
	dup.Boards = append(dup.Boards, dup.Boards[0])

	badDir := Default()
	badDir.Boards[0].Snake.Direction = "sideways"

	noTick := Default()
	noTick.Timing.TickInterval = 0

	badPreset := Default()
	badPreset.Difficulty.Preset = "insane"

	for name, cfg := range map[string]Config{
		"duplicate": dup, "direction": badDir, "tick": noTick, "preset": badPreset,
	} {
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, expected error", name)
		}
	}
}

func TestBoardLookup(t *testing.T) {
	cfg := Default()
	if b, err := cfg.Board(""); err != nil || b.Name != "classic" {
		t.Errorf("Board(\"\") = %v, %v, expected first board", b.Name, err)
	}
	if _, err := cfg.Board("missing"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("Board(missing) error = %v, expected ErrBoardNotFound", err)
	}
}

func TestClassicBoardBody(t *testing.T) {
	body, err := Default().Boards[0].Body()
	if err != nil {
		t.Fatal(err)
	}
	// Heading left, so the tail trails to the right.
	for i, p := range body {
		expected := sim.Position{Row: 10, Col: 10 + i}
		if p != expected {
			t.Errorf("body[%d] = %v, expected %v", i, p, expected)
		}
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "tick_interval: 200ms") {
		t.Errorf("Marshal() should write durations as strings:\n%s", data)
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if p, err := ParseDifficultyPreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficultyPreset(\"\") = %v, %v", p, err)
	}
	if p, err := ParseDifficultyPreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficultyPreset(hard) = %v, %v", p, err)
	}
	if _, err := ParseDifficultyPreset("brutal"); err == nil {
		t.Error("ParseDifficultyPreset(brutal) should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Timing.TickInterval != 300*time.Millisecond {
		t.Errorf("easy interval = %s, expected 300ms", cfg.Timing.TickInterval)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg.Timing.TickInterval != 200*time.Millisecond {
		t.Errorf("normal interval = %s, expected config value", cfg.Timing.TickInterval)
	}
}
