package pullzoom

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid pullzoom config")

// Config holds the tunables of a Controller and its stretch animation.
// The zero value has zoom disabled; start from DefaultConfig.
type Config struct {
	ZoomEnabled   bool          `toml:"zoom_enabled"`
	TouchSlop     float64       `toml:"touch_slop"`
	Model         Model         `toml:"model"`
	DisablePolicy DisablePolicy `toml:"disable_policy"`
	// SnapDuration is the return-to-rest animation length in seconds.
	SnapDuration float32 `toml:"snap_duration"`
	Debug        bool    `toml:"debug"`
}

// DefaultConfig returns zoom enabled, DefaultTouchSlop, the factory's model
// and a finishing disable policy.
func DefaultConfig() Config {
	return Config{
		ZoomEnabled:   true,
		TouchSlop:     DefaultTouchSlop,
		Model:         ModelDefault,
		DisablePolicy: FinishGesture,
		SnapDuration:  SnapDuration,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.TouchSlop < 0 {
		return fmt.Errorf("%w: touch_slop %v is negative", ErrInvalidConfig, c.TouchSlop)
	}
	if c.Model > ModelFooter {
		return fmt.Errorf("%w: unknown model %d", ErrInvalidConfig, c.Model)
	}
	if c.DisablePolicy > AbortGesture {
		return fmt.Errorf("%w: unknown disable_policy %d", ErrInvalidConfig, c.DisablePolicy)
	}
	if c.SnapDuration < 0 {
		return fmt.Errorf("%w: snap_duration %v is negative", ErrInvalidConfig, c.SnapDuration)
	}
	return nil
}

// LoadConfig decodes a TOML file over DefaultConfig, so missing keys keep
// their defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML to path.
func WriteConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// MarshalText encodes the model as "default", "header" or "footer".
func (m Model) MarshalText() ([]byte, error) {
	if m > ModelFooter {
		return nil, fmt.Errorf("unknown model %d", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts "default", "header" or "footer".
func (m *Model) UnmarshalText(text []byte) error {
	switch string(text) {
	case "default", "":
		*m = ModelDefault
	case "header":
		*m = ModelHeader
	case "footer":
		*m = ModelFooter
	default:
		return fmt.Errorf("unknown model %q", text)
	}
	return nil
}

// MarshalText encodes the policy as "finish" or "abort".
func (p DisablePolicy) MarshalText() ([]byte, error) {
	if p > AbortGesture {
		return nil, fmt.Errorf("unknown disable policy %d", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText accepts "finish" or "abort".
func (p *DisablePolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "finish", "":
		*p = FinishGesture
	case "abort":
		*p = AbortGesture
	default:
		return fmt.Errorf("unknown disable policy %q", text)
	}
	return nil
}
