package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Thresholds are the default gate parameters applied when the check command
// is not given explicit overrides.
type Thresholds struct {
	MinOriginality    float64 `yaml:"min_originality"`
	MaxAITone         float64 `yaml:"max_ai_tone"`
	MinHumanity       float64 `yaml:"min_humanity"`
	StrictSourceTrace bool    `yaml:"strict_source_trace"`
}

// Feed is one RSS/Atom source whose items can be batch-gated.
type Feed struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	Thresholds Thresholds `yaml:"thresholds"`
	Retention  string     `yaml:"retention,omitempty"`
	Feeds      []Feed     `yaml:"feeds,omitempty"`
}

// RetentionDuration parses the history retention period, supporting "Nd" day
// syntax, defaulting to 90 days.
func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 90 * 24 * time.Hour
	}
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 90 * 24 * time.Hour
	}
	return d
}

func (c *Config) EnabledFeeds() []Feed {
	var out []Feed
	for _, f := range c.Feeds {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "prosegate", "config.yaml")
}

func HistoryPath() string {
	return filepath.Join(xdg.CacheHome, "prosegate", "history.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	th := cfg.Thresholds
	for name, v := range map[string]float64{
		"min_originality": th.MinOriginality,
		"max_ai_tone":     th.MaxAITone,
		"min_humanity":    th.MinHumanity,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("threshold %s: %v out of range [0,100]", name, v)
		}
	}

	validTypes := map[string]bool{"rss": true, "atom": true}
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %d: name is required", i)
		}
		if f.URL == "" {
			return fmt.Errorf("feed %q: url is required", f.Name)
		}
		u, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("feed %q: invalid url: %w", f.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed %q: url scheme must be http or https, got %q", f.Name, u.Scheme)
		}
		if !validTypes[f.Type] {
			return fmt.Errorf("feed %q: unknown type %q (valid: rss, atom)", f.Name, f.Type)
		}
	}
	return nil
}
