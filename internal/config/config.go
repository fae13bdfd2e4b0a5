// Package config loads the HCL configuration of a local Farkle session.
//
// A configuration file looks like:
//
//	game {
//	  seed = 42
//	}
//
//	player "Alice" {
//	  color = "#FF6B6B"
//	}
//
//	player "Bob" {}
//
//	log {
//	  level = "debug"
//	  file  = "farkle.log"
//	}
//
//	ui {
//	  no_color   = false
//	  turn_timer = true
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete session configuration
type Config struct {
	Game    *GameSettings  `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Log     *LogSettings   `hcl:"log,block"`
	UI      *UISettings    `hcl:"ui,block"`
}

// GameSettings contains game-level configuration
type GameSettings struct {
	Seed *int64 `hcl:"seed,optional"`
}

// PlayerConfig defines one seat, in turn order
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Color string `hcl:"color,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UISettings contains terminal UI configuration
type UISettings struct {
	NoColor   bool `hcl:"no_color,optional"`
	TurnTimer bool `hcl:"turn_timer,optional"`
}

const (
	defaultLogLevel = "info"
	defaultLogFile  = "farkle.log"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Game: &GameSettings{},
		Players: []PlayerConfig{
			{Name: "Player 1"},
			{Name: "Player 2"},
		},
		Log: &LogSettings{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
		UI: &UISettings{
			TurnTimer: true,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, fills defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Game == nil {
		c.Game = def.Game
	}
	if len(c.Players) == 0 {
		c.Players = def.Players
	}
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = defaultLogFile
	}
	if c.UI == nil {
		c.UI = def.UI
	}
}

// Validate checks the configuration can start a game
func (c *Config) Validate() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("at least 2 players are required, got %d", len(c.Players))
	}
	for i, p := range c.Players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player %d has an empty name", i+1)
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// SetPlayers replaces the configured seats with plain names, in order.
func (c *Config) SetPlayers(names []string) {
	players := make([]PlayerConfig, 0, len(names))
	for _, name := range names {
		players = append(players, PlayerConfig{Name: name})
	}
	c.Players = players
}

// PlayerNames returns the names of the seats in turn order.
func (c *Config) PlayerNames() []string {
	names := make([]string, len(c.Players))
	for i, p := range c.Players {
		names[i] = p.Name
	}
	return names
}

// LogLevel returns the parsed log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
