package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"gopkg.in/yaml.v3"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidDate   = errors.New("unrecognized event date")
)

// DateLayout is the ISO layout accepted for event dates.
const DateLayout = "2006-01-02"

// Config struct to hold the configuration settings
type Config struct {
	Season        SeasonConfig        `yaml:"season"`
	Observability ObservabilityConfig `yaml:"observability"`

	dir string
}

// SeasonConfig describes one league season.
type SeasonConfig struct {
	Name         string              `yaml:"name"`
	CoursesFile  string              `yaml:"courses_file"`
	HandicapRule string              `yaml:"handicap_rule"`
	Events       map[int]EventConfig `yaml:"events"`
}

// EventConfig describes one numbered event of the season.
type EventConfig struct {
	Name   string    `yaml:"name"`
	Course string    `yaml:"course"`
	Tees   TeeConfig `yaml:"tees"`
	Type   string    `yaml:"type"`
	Date   string    `yaml:"date"`
	Notes  string    `yaml:"notes"`
}

// TeeConfig names the tee played by each gender.
type TeeConfig struct {
	Male   string `yaml:"male"`
	Female string `yaml:"female"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment overrides.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(filename)
	return cfg, nil
}

// Parse decodes a YAML config document, applies environment overrides and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("LEAGUE_COURSES_FILE"); v != "" {
		cfg.Season.CoursesFile = v
	}
	if v := os.Getenv("LEAGUE_HANDICAP_RULE"); v != "" {
		cfg.Season.HandicapRule = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if err := cfg.Season.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CoursesPath resolves the courses file relative to the config file.
func (c *Config) CoursesPath() string {
	p := c.Season.CoursesFile
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// Validate checks that every event names a course, two tees, and a known
// event type, and that the handicap rule is known.
func (s SeasonConfig) Validate() error {
	if _, err := s.Rule(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(s.Events) == 0 {
		return fmt.Errorf("%w: season has no events", ErrInvalidConfig)
	}
	for _, n := range s.EventNumbers() {
		e := s.Events[n]
		if n < 1 {
			return fmt.Errorf("%w: event number %d", ErrInvalidConfig, n)
		}
		if strings.TrimSpace(e.Course) == "" {
			return fmt.Errorf("%w: event %d has no course", ErrInvalidConfig, n)
		}
		if e.Tees.Male == "" || e.Tees.Female == "" {
			return fmt.Errorf("%w: event %d needs male and female tees", ErrInvalidConfig, n)
		}
		if _, err := e.EventType(); err != nil {
			return fmt.Errorf("%w: event %d: %w", ErrInvalidConfig, n, err)
		}
	}
	return nil
}

// Rule returns the season handicap rule; empty means legacy.
func (s SeasonConfig) Rule() (handicapdomain.SeasonRule, error) {
	return handicapdomain.ParseSeasonRule(s.HandicapRule)
}

// EventNumbers returns configured event numbers in ascending order.
func (s SeasonConfig) EventNumbers() []int {
	return slices.Sorted(maps.Keys(s.Events))
}

// EventType returns the event type; empty means STANDARD.
func (e EventConfig) EventType() (leaderboarddomain.EventType, error) {
	return leaderboarddomain.ParseEventType(e.Type)
}

// TeeFor returns the tee name played by gender.
func (e EventConfig) TeeFor(gender coursedomain.Gender) (string, error) {
	switch gender {
	case coursedomain.GenderMale:
		return e.Tees.Male, nil
	case coursedomain.GenderFemale:
		return e.Tees.Female, nil
	default:
		return "", fmt.Errorf("%w: %q", coursedomain.ErrUnknownGender, gender)
	}
}

// ResolveDate parses the event date as an ISO date or a natural-language
// phrase relative to base. An empty date yields the zero time.
func (e EventConfig) ResolveDate(base time.Time) (time.Time, error) {
	raw := strings.TrimSpace(e.Date)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(DateLayout, raw, base.Location()); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(strings.ToLower(raw), base)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, e.Date, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, e.Date)
	}
	return r.Time, nil
}

// Level maps the configured level name to a slog level, defaulting to
// info.
func (o ObservabilityConfig) Level() slog.Level {
	switch strings.ToLower(o.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
