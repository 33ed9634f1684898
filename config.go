package prefixcalc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel string `toml:"log_level"`
	Overflow string `toml:"overflow"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Overflow: OverflowWrap.String(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if _, err := ParseOverflow(cfg.Overflow); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}

// Apply sets the overflow policy of env.
func (c *Config) Apply(env *Env) error {
	o, err := ParseOverflow(c.Overflow)
	if err != nil {
		return err
	}
	env.SetOverflow(o)
	return nil
}
