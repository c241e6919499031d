package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SuggestionConfig is a suggested frequency in the config file.
type SuggestionConfig struct {
	Every int    `yaml:"every" validate:"min=0"`
	Unit  string `yaml:"unit" validate:"required,oneof=day week month year"`
}

// ActionConfig describes a catalogued action.
type ActionConfig struct {
	Name      string            `yaml:"name" validate:"required"`
	Category  string            `yaml:"category"`
	Suggested *SuggestionConfig `yaml:"suggested,omitempty"`
}

// EndDateCapsConfig is the recurrence horizon per unit, in months.
type EndDateCapsConfig struct {
	DayMonths   int `yaml:"day_months" validate:"min=0"`
	WeekMonths  int `yaml:"week_months" validate:"min=0"`
	MonthMonths int `yaml:"month_months" validate:"min=0"`
	YearMonths  int `yaml:"year_months" validate:"min=0"`
}

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA zone reference dates are read in.
	Timezone string `yaml:"timezone" validate:"required"`

	// SlotMinutes is the step between selectable times of day.
	SlotMinutes int `yaml:"slot_minutes" validate:"min=1,max=1440"`

	EndDateCaps EndDateCapsConfig `yaml:"end_date_caps"`

	// Actions seed the suggestion catalog; ActionsFile adds more from a JSON
	// export of the action schema.
	Actions     []ActionConfig `yaml:"actions" validate:"dive"`
	ActionsFile string         `yaml:"actions_file,omitempty"`

	LogCalls bool `yaml:"log_calls"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	caps := recurrence.DefaultEndDateCaps()
	return &Config{
		Timezone:    "Local",
		SlotMinutes: recurrence.DefaultSlotMinutes,
		EndDateCaps: EndDateCapsConfig{
			DayMonths:   caps.DayMonths,
			WeekMonths:  caps.WeekMonths,
			MonthMonths: caps.MonthMonths,
			YearMonths:  caps.YearMonths,
		},
		Actions: []ActionConfig{},
	}
}

// DefaultPath is ~/.careminder/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".careminder", "config.yaml"), nil
}

// Normalize fills in missing/zero values so partially written files still
// behave like the defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	if c.SlotMinutes <= 0 {
		c.SlotMinutes = d.SlotMinutes
	}
	if c.EndDateCaps.DayMonths <= 0 {
		c.EndDateCaps.DayMonths = d.EndDateCaps.DayMonths
	}
	if c.EndDateCaps.WeekMonths <= 0 {
		c.EndDateCaps.WeekMonths = d.EndDateCaps.WeekMonths
	}
	if c.EndDateCaps.MonthMonths <= 0 {
		c.EndDateCaps.MonthMonths = d.EndDateCaps.MonthMonths
	}
	if c.EndDateCaps.YearMonths <= 0 {
		c.EndDateCaps.YearMonths = d.EndDateCaps.YearMonths
	}
	if c.Actions == nil {
		c.Actions = []ActionConfig{}
	}
}

// ApplyEnv overrides fields from CAREMINDER_* environment variables.
// Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CAREMINDER_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("CAREMINDER_SLOT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SlotMinutes = n
		}
	}
	if v := os.Getenv("CAREMINDER_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogCalls = b
		}
	}
	if v := os.Getenv("CAREMINDER_ACTIONS_FILE"); v != "" {
		c.ActionsFile = v
	}
}

// Validate checks field constraints and that the timezone and slot
// granularity are usable.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if 1440%c.SlotMinutes != 0 {
		return fmt.Errorf("invalid config: slot_minutes %d does not divide a day", c.SlotMinutes)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Caps converts the configured horizon into recurrence caps.
func (c *Config) Caps() recurrence.EndDateCaps {
	return recurrence.EndDateCaps{
		DayMonths:   c.EndDateCaps.DayMonths,
		WeekMonths:  c.EndDateCaps.WeekMonths,
		MonthMonths: c.EndDateCaps.MonthMonths,
		YearMonths:  c.EndDateCaps.YearMonths,
	}
}

// DomainActions converts the configured actions.
func (c *Config) DomainActions() []domain.Action {
	out := make([]domain.Action, 0, len(c.Actions))
	for _, a := range c.Actions {
		action := domain.Action{Name: a.Name, Category: a.Category}
		if a.Suggested != nil {
			action.Suggested = &domain.Suggestion{
				Unit:     domain.Unit(a.Suggested.Unit),
				Interval: max(a.Suggested.Every, 1),
			}
		}
		out = append(out, action)
	}
	return out
}

// Load reads configuration from path, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			cfg = &Config{}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.Normalize()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
