package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ClientConfig contains the client configuration YAML content.
type ClientConfig struct {
	ServerURL       string  `yaml:"server-url"`
	WindowWidth     int     `yaml:"window-width"`
	WindowHeight    int     `yaml:"window-height"`
	WindowTitle     string  `yaml:"window-title"`
	TickIntervalMs  int     `yaml:"tick-interval-ms"`
	RevealTicks     int     `yaml:"reveal-ticks-per-seat"`
	BackoffFloorMs  int     `yaml:"backoff-floor-ms"`
	BackoffCeilMs   int     `yaml:"backoff-ceiling-ms"`
	ChipDenoms      []int   `yaml:"chip-denominations"`
	SessionFile     string  `yaml:"session-file"`
	ChatHistorySize int     `yaml:"chat-history-size"`
}

// DefaultConfig returns the configuration used when no YAML file is given.
// The reveal pacing and tick interval match the original tuning: one seat
// reveal roughly every 15 frames at a 200ms frame interval.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		ServerURL:       "ws://localhost:8080",
		WindowWidth:     1280,
		WindowHeight:    800,
		WindowTitle:     "Poker",
		TickIntervalMs:  200,
		RevealTicks:     15,
		BackoffFloorMs:  250,
		BackoffCeilMs:   10000,
		ChipDenoms:      []int{1000, 500, 100, 25, 20, 10, 5, 1},
		SessionFile:     "",
		ChatHistorySize: 200,
	}
}

// ReadClientConfig reads the client configuration from a YAML file.
// Missing fields fall back to the defaults.
func ReadClientConfig(fileName string) (*ClientConfig, error) {
	cfg := DefaultConfig()
	if fileName == "" {
		return &cfg, nil
	}
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading config file [%s]", fileName)
	}
	err = yaml.Unmarshal(bytes, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid config file [%s]", fileName)
	}
	return &cfg, nil
}

// Validate checks the fields that the rest of the client assumes to be sane.
func (c *ClientConfig) Validate() error {
	if c.TickIntervalMs <= 0 {
		return errors.Errorf("tick-interval-ms must be positive, got %d", c.TickIntervalMs)
	}
	if c.RevealTicks <= 0 {
		return errors.Errorf("reveal-ticks-per-seat must be positive, got %d", c.RevealTicks)
	}
	if c.BackoffFloorMs <= 0 || c.BackoffCeilMs < c.BackoffFloorMs {
		return errors.Errorf("invalid backoff range %d..%d", c.BackoffFloorMs, c.BackoffCeilMs)
	}
	if len(c.ChipDenoms) == 0 {
		return errors.New("chip-denominations must not be empty")
	}
	for i, d := range c.ChipDenoms {
		if d <= 0 {
			return errors.Errorf("chip denomination must be positive, got %d", d)
		}
		if i > 0 && c.ChipDenoms[i-1] <= d {
			return errors.Errorf("chip denominations must be strictly descending at index %d", i)
		}
	}
	if c.ChipDenoms[len(c.ChipDenoms)-1] != 1 {
		return errors.New("chip denominations must end with 1 so every value decomposes")
	}
	return nil
}

func (c *ClientConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

func (c *ClientConfig) BackoffFloor() time.Duration {
	return time.Duration(c.BackoffFloorMs) * time.Millisecond
}

func (c *ClientConfig) BackoffCeiling() time.Duration {
	return time.Duration(c.BackoffCeilMs) * time.Millisecond
}
