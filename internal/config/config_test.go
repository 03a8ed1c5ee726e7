package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	var c = DefaultConfig
	if err := c.Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidate(t *testing.T) {
	var tests = []func(c *Config){
		func(c *Config) { c.BoardSize = 4 },
		func(c *Config) { c.Difficulty = 0 },
		func(c *Config) { c.Difficulty = 5 },
		func(c *Config) { c.MaxDepth = -1 },
		func(c *Config) { c.TimeBudgetMs = -1 },
		func(c *Config) { c.Symbols.Black = '\n' },
	}
	for i, mutate := range tests {
		var c = DefaultConfig
		mutate(&c)
		var err = c.Validate()
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Error(i, err)
		}
	}
}

func TestSaveAndRead(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "gomoku", "config.json")
	var c = DefaultConfig
	c.BoardSize = 19
	c.Symbols.Black = 'X'
	if err := c.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	var loaded = DefaultConfig
	if err := ReadFile(path, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded != c {
		t.Error(loaded, c)
	}
}

func TestReadFilePartial(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"difficulty": 1}`), 0664); err != nil {
		t.Fatal(err)
	}
	var c = DefaultConfig
	if err := ReadFile(path, &c); err != nil {
		t.Fatal(err)
	}
	if c.Difficulty != 1 || c.BoardSize != DefaultConfig.BoardSize {
		t.Error(c)
	}
	if err := os.WriteFile(path, []byte(`{`), 0664); err != nil {
		t.Fatal(err)
	}
	if err := ReadFile(path, &c); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GOMOKU_BOARD_SIZE", "9")
	t.Setenv("GOMOKU_USE_PRUNING", "false")
	t.Setenv("GOMOKU_TIME_BUDGET_MS", "oops")
	t.Setenv("GOMOKU_LOG_LEVEL", "debug")
	var c = DefaultConfig
	c.ApplyEnv()
	if c.BoardSize != 9 || c.UsePruning || c.LogLevel != "debug" {
		t.Error(c)
	}
	if c.TimeBudgetMs != DefaultConfig.TimeBudgetMs {
		t.Error("invalid value must keep the default", c.TimeBudgetMs)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("GOMOKU_MAX_DEPTH", "")
	os.Unsetenv("GOMOKU_MAX_DEPTH")
	var path = filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GOMOKU_MAX_DEPTH=4\n"), 0664); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), path); err != nil {
		t.Fatal(err)
	}
	var c = DefaultConfig
	c.ApplyEnv()
	if c.MaxDepth != 4 {
		t.Error(c.MaxDepth)
	}
}

func TestEngineOptions(t *testing.T) {
	var c = DefaultConfig
	c.Difficulty = 1
	c.TimeBudgetMs = 500
	c.UsePruning = false
	var options = c.EngineOptions()
	if options.Config.MaxDepth != 1 || options.UsePruning || options.TimeBudget != 500*time.Millisecond {
		t.Error(options)
	}
	if options.RandomMoveRate == 0 {
		t.Error("difficulty 1 plays random moves")
	}
	c.MaxDepth = 3
	if options = c.EngineOptions(); options.Config.MaxDepth != 3 {
		t.Error(options.Config.MaxDepth)
	}
}
