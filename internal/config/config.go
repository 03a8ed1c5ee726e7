package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/GomokuGo/pkg/common"
	"github.com/ChizhovVadim/GomokuGo/pkg/engine"
)

var (
	cfgFile   = "gomoku/config.json"
	envPrefix = "GOMOKU_"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type Symbols struct {
	Black  rune `json:"black"`
	White  rune `json:"white"`
	Empty  rune `json:"empty"`
	Cursor rune `json:"cursor"`
}

type Config struct {
	BoardSize  int `json:"board_size"`
	Difficulty int `json:"difficulty"`
	// MaxDepth overrides the depth implied by Difficulty when positive.
	MaxDepth     int     `json:"max_depth"`
	UsePruning   bool    `json:"use_pruning"`
	TimeBudgetMs int     `json:"time_budget_ms"`
	LogLevel     string  `json:"log_level"`
	Symbols      Symbols `json:"symbols"`
}

var DefaultConfig = Config{
	BoardSize:    common.DefaultSize,
	Difficulty:   3,
	UsePruning:   true,
	TimeBudgetMs: 10000,
	LogLevel:     "info",
	Symbols: Symbols{
		Black:  '●',
		White:  '○',
		Empty:  '┼',
		Cursor: '◇',
	},
}

// InitConfig layers the config file found in the XDG directories, a .env file in
// the working directory and GOMOKU_* environment variables over the defaults.
func InitConfig() (*Config, error) {
	var config = DefaultConfig
	if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if err := ReadFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	config.ApplyEnv()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.BoardSize < common.MinSize {
		return &InvalidConfig{fmt.Sprintf("board size %d is less than %d", c.BoardSize, common.MinSize)}
	}
	if c.Difficulty < 1 || c.Difficulty > 4 {
		return &InvalidConfig{fmt.Sprintf("difficulty %d is out of range 1-4", c.Difficulty)}
	}
	if c.MaxDepth < 0 {
		return &InvalidConfig{fmt.Sprintf("max depth %d is negative", c.MaxDepth)}
	}
	if c.TimeBudgetMs < 0 {
		return &InvalidConfig{fmt.Sprintf("time budget %d is negative", c.TimeBudgetMs)}
	}
	for _, r := range []rune{c.Symbols.Black, c.Symbols.White, c.Symbols.Empty, c.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// EngineOptions converts the config into search options.
func (c *Config) EngineOptions() engine.Options {
	var options = engine.NewOptions(c.Difficulty)
	if c.MaxDepth > 0 {
		options.Config.MaxDepth = c.MaxDepth
	}
	options.UsePruning = c.UsePruning
	options.TimeBudget = time.Duration(c.TimeBudgetMs) * time.Millisecond
	return options
}

func (c *Config) ApplyEnv() {
	c.BoardSize = GetEnvAsInt(envPrefix+"BOARD_SIZE", c.BoardSize)
	c.Difficulty = GetEnvAsInt(envPrefix+"DIFFICULTY", c.Difficulty)
	c.MaxDepth = GetEnvAsInt(envPrefix+"MAX_DEPTH", c.MaxDepth)
	c.UsePruning = GetEnvAsBool(envPrefix+"USE_PRUNING", c.UsePruning)
	c.TimeBudgetMs = GetEnvAsInt(envPrefix+"TIME_BUDGET_MS", c.TimeBudgetMs)
	c.LogLevel = GetEnv(envPrefix+"LOG_LEVEL", c.LogLevel)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return c.SaveTo(absPath)
}

func (c *Config) SaveTo(filePath string) error {
	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, 0664)
}

// ReadFile overlays the JSON file on c. Missing keys keep their current values.
func ReadFile(filePath string, c *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}

// LoadDotEnv loads variables from the files that exist. Variables already set win.
func LoadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid-env-value")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid-env-value")
		return defaultValue
	}
	return value
}
