package config

import (
	"encoding/json"
	"errors"
	"os"

	"svw.info/sudokuplay/internal/domain"
)

// Config carries server settings and the difficulty table. The table maps a
// difficulty label to how many cells are removed from the solved grid; it is
// data consumed by the game service, not logic.
type Config struct {
	Addr           string         `json:"addr"`
	LogLevel       string         `json:"logLevel"`
	BoardSize      int            `json:"boardSize"`
	Removed        map[string]int `json:"removed"`
	DefaultRemoved int            `json:"defaultRemoved"`
}

// Default returns the compiled-in configuration: standard 9x9 board with
// easy/medium/hard removing 30/40/50 cells and 40 as the fallback.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		LogLevel:  "info",
		BoardSize: 9,
		Removed: map[string]int{
			"easy":   30,
			"medium": 40,
			"hard":   50,
		},
		DefaultRemoved: 40,
	}
}

// Load reads a JSON config file over the defaults. A missing file is not an
// error; the defaults simply apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Removed == nil {
		cfg.Removed = Default().Removed
	}
	if cfg.DefaultRemoved == 0 {
		cfg.DefaultRemoved = Default().DefaultRemoved
	}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = 9
	}
	return cfg, nil
}

// RemovedFor resolves a difficulty to its removal count, falling back to the
// default for labels the table does not carry.
func (c *Config) RemovedFor(d domain.Difficulty) int {
	if n, ok := c.Removed[d.String()]; ok {
		return n
	}
	return c.DefaultRemoved
}
