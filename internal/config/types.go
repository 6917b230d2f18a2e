package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Source types.
const (
	SourceHTTP = "http"
	SourceMQTT = "mqtt"
)

// Config represents the complete .invdash.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Source  SourceConfig `yaml:"source" mapstructure:"source"`
	MQTT    MQTTConfig   `yaml:"mqtt" mapstructure:"mqtt"`
	Poll    PollConfig   `yaml:"poll" mapstructure:"poll"`
	Format  FormatConfig `yaml:"format" mapstructure:"format"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`
	Log     LogConfig    `yaml:"log" mapstructure:"log"`
}

// SourceConfig says where status and metadata come from.
type SourceConfig struct {
	// Type is "http" (poll the device's web server) or "mqtt" (listen to the bridge).
	Type string `yaml:"type" mapstructure:"type"`

	// URL is the device's base URL, e.g. http://192.168.4.1.
	URL        string `yaml:"url" mapstructure:"url"`
	StatusPath string `yaml:"status_path" mapstructure:"status_path"`
	NamesPath  string `yaml:"names_path" mapstructure:"names_path"`

	// NamesFile is a local metadata document used instead of NamesPath.
	NamesFile string `yaml:"names_file,omitempty" mapstructure:"names_file"`

	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// MQTTConfig is used when Source.Type is "mqtt".
type MQTTConfig struct {
	Broker   string   `yaml:"broker" mapstructure:"broker"`
	ClientID string   `yaml:"client_id" mapstructure:"client_id"`
	Username string   `yaml:"username,omitempty" mapstructure:"username"`
	Password string   `yaml:"password,omitempty" mapstructure:"password"`
	Topics   []string `yaml:"topics" mapstructure:"topics"`
}

// PollConfig controls the refresh cadence.
type PollConfig struct {
	// Interval is the time between polls in seconds.
	Interval float64 `yaml:"interval" mapstructure:"interval"`

	// IntervalField is a section.field whose value replaces Interval.
	IntervalField     string `yaml:"interval_field,omitempty" mapstructure:"interval_field"`
	IntervalFieldUnit string `yaml:"interval_field_unit,omitempty" mapstructure:"interval_field_unit"`
}

// IntervalDuration returns Interval as a time.Duration.
func (p PollConfig) IntervalDuration() time.Duration {
	return time.Duration(p.Interval * float64(time.Second))
}

// FormatConfig tunes value formatting.
type FormatConfig struct {
	Missing         string   `yaml:"missing" mapstructure:"missing"`
	DurationSection string   `yaml:"duration_section" mapstructure:"duration_section"`
	DurationFields  []string `yaml:"duration_fields" mapstructure:"duration_fields"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	// File receives logs while the dashboard owns the terminal.
	File string `yaml:"file,omitempty" mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Source: SourceConfig{
			Type:       SourceHTTP,
			URL:        "http://192.168.4.1",
			StatusPath: "/api/status",
			NamesPath:  "/names.json",
			Timeout:    10 * time.Second,
		},
		MQTT: MQTTConfig{
			Broker:   "tcp://localhost:1883",
			ClientID: "invdash",
			Topics:   []string{"powmr/#"},
		},
		Poll: PollConfig{
			Interval:          15,
			IntervalFieldUnit: "s",
		},
		Format: FormatConfig{
			Missing:         "-",
			DurationSection: "inverter",
			DurationFields:  []string{"autonomy", "uptime"},
		},
		Output: OutputConfig{Color: "auto"},
		Log:    LogConfig{Level: "info"},
	}
}
