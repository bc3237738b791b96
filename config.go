package litterlogic

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is wrapped by every configuration problem.
var ErrInvalidConfig = errors.New("invalid config")

// Config carries the environment constants the policy is tuned against.
type Config struct {
	MaxCharge int       `json:"maxCharge" jsonschema:"minimum=1,description=Battery capacity of the agent"`
	MaxLitter int       `json:"maxLitter" jsonschema:"minimum=1,description=Carrying capacity for either material"`
	ViewRange int       `json:"viewRange" jsonschema:"minimum=1,description=Half-width of the square view window"`
	WalkMin   int       `json:"walkMin" jsonschema:"minimum=1,description=Shortest exploration walk in ticks"`
	WalkMax   int       `json:"walkMax" jsonschema:"minimum=1,description=Longest exploration walk in ticks"`
	Home      *Position `json:"home,omitempty" jsonschema:"description=Recharge point the agent starts next to"`
}

// DefaultConfig returns the constants of the standard litter world.
func DefaultConfig() Config {
	return Config{
		MaxCharge: 100,
		MaxLitter: 100,
		ViewRange: 30,
		WalkMin:   20,
		WalkMax:   25,
		Home:      &Position{},
	}
}

// Validate checks the config for values the policy cannot work with.
func (c Config) Validate() error {
	switch {
	case c.MaxCharge <= 0:
		return fmt.Errorf("%w: maxCharge must be positive, got %d", ErrInvalidConfig, c.MaxCharge)
	case c.MaxLitter <= 0:
		return fmt.Errorf("%w: maxLitter must be positive, got %d", ErrInvalidConfig, c.MaxLitter)
	case c.ViewRange <= 0:
		return fmt.Errorf("%w: viewRange must be positive, got %d", ErrInvalidConfig, c.ViewRange)
	case c.WalkMin <= 0:
		return fmt.Errorf("%w: walkMin must be positive, got %d", ErrInvalidConfig, c.WalkMin)
	case c.WalkMax < c.WalkMin:
		return fmt.Errorf("%w: walkMax %d below walkMin %d", ErrInvalidConfig, c.WalkMax, c.WalkMin)
	}
	return nil
}

// LoadConfig reads a JSON config from path. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a JSON config.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
