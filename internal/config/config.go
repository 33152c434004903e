// Package config loads table configuration from HCL files: stakes, the
// variant rotation, and the seats at the table.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/sevenstud/internal/game"
)

// Config is the complete table configuration
type Config struct {
	Table  TableSettings `hcl:"table,block"`
	Stakes StakesConfig  `hcl:"stakes,block"`
	Seats  []SeatConfig  `hcl:"seat,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	Seed     string   `hcl:"seed,optional"`
	Deals    int      `hcl:"deals,optional"`
	Rotation []string `hcl:"rotation,optional"`
}

// StakesConfig defines the fixed-limit bet sizes
type StakesConfig struct {
	Ante     int `hcl:"ante"`
	BringIn  int `hcl:"bring_in"`
	SmallBet int `hcl:"small_bet"`
	BigBet   int `hcl:"big_bet"`
}

// SeatConfig defines one seat at the table
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	Kind  string `hcl:"kind,optional"`
	Stack int    `hcl:"stack,optional"`
}

// Default returns the default two-seat configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Deals:    1,
			Rotation: []string{string(game.VariantHigh)},
		},
		Stakes: StakesConfig{
			Ante:     10,
			BringIn:  20,
			SmallBet: 40,
			BigBet:   80,
		},
		Seats: []SeatConfig{
			{Name: "player-1", Kind: "automated", Stack: 1000},
			{Name: "player-2", Kind: "automated", Stack: 1000},
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Table.Deals == 0 {
		cfg.Table.Deals = 1
	}
	if len(cfg.Table.Rotation) == 0 {
		cfg.Table.Rotation = []string{string(game.VariantHigh)}
	}
	for i := range cfg.Seats {
		if cfg.Seats[i].Kind == "" {
			cfg.Seats[i].Kind = "automated"
		}
		if cfg.Seats[i].Stack == 0 {
			cfg.Seats[i].Stack = 1000
		}
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Stakes.Ante <= 0 {
		return fmt.Errorf("ante must be positive")
	}
	if c.Stakes.BringIn <= 0 || c.Stakes.BringIn > c.Stakes.SmallBet {
		return fmt.Errorf("bring-in must be positive and no larger than the small bet")
	}
	if c.Stakes.BigBet < c.Stakes.SmallBet {
		return fmt.Errorf("big bet must be at least the small bet")
	}
	if len(c.Seats) < 2 || len(c.Seats) > game.MaxSeats {
		return fmt.Errorf("table must have 2 to %d seats, got %d", game.MaxSeats, len(c.Seats))
	}
	for _, seat := range c.Seats {
		if seat.Kind != string(game.Human) && seat.Kind != string(game.Automated) {
			return fmt.Errorf("seat %s: invalid kind %q", seat.Name, seat.Kind)
		}
		if seat.Stack <= 0 {
			return fmt.Errorf("seat %s: stack must be positive", seat.Name)
		}
	}
	for _, v := range c.Table.Rotation {
		if !game.Variant(v).Valid() {
			return fmt.Errorf("unknown variant %q in rotation", v)
		}
	}
	return nil
}

// Rotation returns the rotation as engine variants
func (c *Config) Rotation() []game.Variant {
	out := make([]game.Variant, len(c.Table.Rotation))
	for i, v := range c.Table.Rotation {
		out[i] = game.Variant(v)
	}
	return out
}

// GameStakes returns the stakes as engine stakes
func (c *Config) GameStakes() game.Stakes {
	return game.Stakes{
		Ante:     c.Stakes.Ante,
		BringIn:  c.Stakes.BringIn,
		SmallBet: c.Stakes.SmallBet,
		BigBet:   c.Stakes.BigBet,
	}
}
