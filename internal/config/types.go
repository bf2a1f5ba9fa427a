package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .boardwatch.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Server is the base URL of the meeting service.
	Server string `yaml:"server" mapstructure:"server"`

	// PollInterval is how often the meeting status is fetched while a
	// session is live.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`

	// Experience overrides or extends the built-in role experience
	// table, keyed by role prefix (the part of a member identity before
	// the first underscore).
	Experience map[string]int `yaml:"experience" mapstructure:"experience"`
}

// DefaultServer matches the meeting service's standard local port.
const DefaultServer = "http://localhost:5001"

// DefaultPollInterval is the standard poll cadence.
const DefaultPollInterval = 2 * time.Second

// MarshalYAML renders durations as strings ("2s") rather than nanosecond
// integers so written config files stay human-editable.
func (c Config) MarshalYAML() (interface{}, error) {
	type plain struct {
		Version      int            `yaml:"version"`
		Server       string         `yaml:"server"`
		PollInterval string         `yaml:"poll_interval"`
		Experience   map[string]int `yaml:"experience,omitempty"`
	}
	return plain{
		Version:      c.Version,
		Server:       c.Server,
		PollInterval: c.PollInterval.String(),
		Experience:   c.Experience,
	}, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		Server:       DefaultServer,
		PollInterval: DefaultPollInterval,
		Experience:   make(map[string]int),
	}
}
