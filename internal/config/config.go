// Package config assembles a runtime Config from environment variables (an
// optional .env file first, following intelligencedev-manifold's
// internal/config/loader.go), with the structured tables (district
// definitions, half-lives, source weights) sourced from an optional YAML
// file whose path is itself an environment variable.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kittclouds/memcity/internal/decay"
	"github.com/kittclouds/memcity/internal/layout"
)

// Config is the fully resolved runtime configuration: where to watch, how
// the ingestion pipeline behaves, and the decay/layout tables that shape
// the published snapshot and layout result.
type Config struct {
	WorkspacePath   string
	DebounceMs      int
	RebuildOnDelete bool
	TickerWhitelist []string
	TickerStoplist  []string
	Decay           decay.Config
	Layout          layout.Config
}

// defaultWorkspacePath falls back to a platform user-data directory under
// the current user's home, mirroring the "platform-default user-data
// directory" default.
func defaultWorkspacePath() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir + "/.memcity"
	}
	return ".memcity"
}

// Load reads .env (if present, via godotenv.Overload so it takes priority
// over an already-set shell environment, the same deliberate override
// order intelligencedev-manifold's loader uses), then resolves every
// recognized environment variable, then layers a YAML file of structured
// tables on top if DISTRICT_DEFINITIONS or a sibling path variable names
// one.
func Load() (Config, error) {
	_ = godotenv.Overload()

	cfg := Config{
		WorkspacePath:   defaultWorkspacePath(),
		DebounceMs:      500,
		RebuildOnDelete: true,
		Decay:           decay.DefaultConfig(),
		Layout:          layout.DefaultConfig(),
	}

	if v := strings.TrimSpace(os.Getenv("WORKSPACE_PATH")); v != "" {
		cfg.WorkspacePath = v
	}
	if v := strings.TrimSpace(os.Getenv("DEBOUNCE_MS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: DEBOUNCE_MS: %w", err)
		}
		cfg.DebounceMs = n
	}
	if v := strings.TrimSpace(os.Getenv("REBUILD_ON_DELETE")); v != "" {
		cfg.RebuildOnDelete = strings.EqualFold(v, "true") || v == "1" || strings.EqualFold(v, "yes")
	}
	if v := strings.TrimSpace(os.Getenv("TICKER_WHITELIST")); v != "" {
		cfg.TickerWhitelist = splitCommaList(v)
	}
	if v := strings.TrimSpace(os.Getenv("TICKER_STOPLIST")); v != "" {
		cfg.TickerStoplist = splitCommaList(v)
	}
	if v := strings.TrimSpace(os.Getenv("LAYOUT_ITERATIONS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: LAYOUT_ITERATIONS: %w", err)
		}
		cfg.Layout.Iterations = n
	}
	if v := strings.TrimSpace(os.Getenv("LAYOUT_BOUNDS")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: LAYOUT_BOUNDS: %w", err)
		}
		cfg.Layout.Bounds = n
	}
	if v := strings.TrimSpace(os.Getenv("MAX_CONNECTIONS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: MAX_CONNECTIONS: %w", err)
		}
		cfg.Layout.MaxConnections = n
	}

	if path := strings.TrimSpace(os.Getenv("DISTRICT_DEFINITIONS")); path != "" {
		districts, err := loadDistrictDefinitions(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: district_definitions: %w", err)
		}
		cfg.Layout.Districts = districts
	}

	if path := strings.TrimSpace(os.Getenv("HALF_LIVES_BY_TYPE")); path != "" {
		halfLives, err := loadHalfLives(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: half_lives_by_type: %w", err)
		}
		cfg.Decay.HalfLives = halfLives
	}

	if path := strings.TrimSpace(os.Getenv("SOURCE_WEIGHTS_BY_PATTERN")); path != "" {
		weights, err := loadSourceWeights(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: source_weights_by_pattern: %w", err)
		}
		cfg.Decay.PathPatterns = weights
	}

	return cfg, nil
}

func splitCommaList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DebounceDuration converts DebounceMs to a time.Duration.
func (c Config) DebounceDuration() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

type districtFile struct {
	Districts []struct {
		Name             string   `yaml:"name"`
		Keywords         []string `yaml:"keywords"`
		BaseX            float64  `yaml:"base_x"`
		BaseZ            float64  `yaml:"base_z"`
		Color            string   `yaml:"color"`
		ImportanceFactor float64  `yaml:"importance_factor"`
	} `yaml:"districts"`
}

func loadDistrictDefinitions(path string) ([]layout.District, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f districtFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	out := make([]layout.District, 0, len(f.Districts))
	for _, d := range f.Districts {
		out = append(out, layout.District{
			Name:             d.Name,
			Keywords:         d.Keywords,
			BaseX:            d.BaseX,
			BaseZ:            d.BaseZ,
			Color:            d.Color,
			ImportanceFactor: d.ImportanceFactor,
		})
	}
	return out, nil
}

type halfLifeFile struct {
	HalfLivesDays map[string]float64 `yaml:"half_lives_days"`
}

func loadHalfLives(path string) (map[decay.EntityType]time.Duration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f halfLifeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	out := make(map[decay.EntityType]time.Duration, len(f.HalfLivesDays))
	for t, days := range f.HalfLivesDays {
		out[decay.EntityType(t)] = time.Duration(days * float64(24*time.Hour))
	}
	return out, nil
}

type sourceWeightFile struct {
	Weights []struct {
		Pattern    string  `yaml:"pattern"`
		Multiplier float64 `yaml:"multiplier"`
	} `yaml:"source_weights"`
}

func loadSourceWeights(path string) ([]decay.SourceWeight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f sourceWeightFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	out := make([]decay.SourceWeight, 0, len(f.Weights))
	for _, w := range f.Weights {
		out = append(out, decay.SourceWeight{Pattern: w.Pattern, Multiplier: w.Multiplier})
	}
	return out, nil
}
