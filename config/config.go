package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/YoRyan/operdate-getbus/infra/calendar"
	"github.com/YoRyan/operdate-getbus/infra/prefs"
	"github.com/YoRyan/operdate-getbus/infra/sheet"
)

// Config gathers every setting the commands need.
type Config struct {
	// Timezone anchors dates and event timestamps. Empty means local time.
	Timezone string          `json:"timezone"`
	Sheets   sheet.Config    `json:"sheets"`
	Calendar calendar.Config `json:"calendar"`
	Prefs    prefs.Config    `json:"prefs"`
	Logging  LoggingConfig   `json:"logging"`
}

// Load reads the configuration file (yaml or json by extension) and applies
// OPERDATE_ environment overrides. A missing file is not an error: the tool
// then runs on defaults plus environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := k.Load(env.Provider("OPERDATE_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "operdate_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Sheets.SetDefaults()
	cfg.Calendar.SetDefaults()
	cfg.Prefs.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Sheets.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Calendar.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	return loc, nil
}
