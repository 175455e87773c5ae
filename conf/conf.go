// Package conf defines the comparable configuration value attached to
// package registrations. Equality of Config values is the registration
// trie's conflict test, so the struct must stay comparable.
package conf

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Strategy selects the check-generation time-complexity regime.
type Strategy uint8

const (
	// StrategyO1 checks a constant number of members per container.
	StrategyO1 Strategy = iota
	// StrategyOLogN checks a logarithmic sample of members per container.
	StrategyOLogN
	// StrategyON checks every member of every container.
	StrategyON
)

func (s Strategy) String() string {
	switch s {
	case StrategyO1:
		return "O1"
	case StrategyOLogN:
		return "OLogN"
	case StrategyON:
		return "ON"
	}
	return "Unknown"
}

// ParseStrategy parses the textual strategy names accepted from the
// environment.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "O1":
		return StrategyO1, nil
	case "OLogN":
		return StrategyOLogN, nil
	case "ON":
		return StrategyON, nil
	}
	return 0, fmt.Errorf("conf: unknown strategy %q", s)
}

// Config configures type-check instrumentation for a registered package.
type Config struct {
	Strategy Strategy
	IsDebug  bool
}

// Default returns the default configuration: constant-time checking, debug
// disabled.
func Default() Config {
	return Config{Strategy: StrategyO1}
}

type envConfig struct {
	Strategy string `env:"BEARTYPE_STRATEGY,default=O1"`
	IsDebug  bool   `env:"BEARTYPE_DEBUG,default=false"`
}

// FromEnv builds a Config from BEARTYPE_* environment variables, falling
// back to defaults for unset variables.
func FromEnv() (Config, error) {
	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		return Config{}, fmt.Errorf("conf: decode environment: %w", err)
	}
	strategy, err := ParseStrategy(ec.Strategy)
	if err != nil {
		return Config{}, err
	}
	return Config{Strategy: strategy, IsDebug: ec.IsDebug}, nil
}
