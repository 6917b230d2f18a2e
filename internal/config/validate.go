package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/format"
	"github.com/rileyhilliard/invdash/internal/poll"
)

var validColorModes = map[string]bool{"auto": true, "always": true, "never": true}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but invdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest invdash release")
	}

	if err := validateSource(cfg); err != nil {
		return err
	}
	if err := validatePoll(cfg.Poll); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'poll' section in your .invdash.yaml.")
	}

	if cfg.Format.Missing == "" {
		return errors.New(errors.ErrConfig,
			"format.missing can't be empty",
			"Use a visible placeholder such as '-' or '--'.")
	}

	if !validColorModes[cfg.Output.Color] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color %q", cfg.Output.Color),
			"Use one of: auto, always, never.")
	}

	return nil
}

func validateSource(cfg *Config) error {
	switch cfg.Source.Type {
	case SourceHTTP:
		if strings.TrimSpace(cfg.Source.URL) == "" {
			return errors.New(errors.ErrConfig,
				"source.url is empty",
				"Set source.url to the device address, e.g. http://192.168.4.1")
		}
		u, err := url.Parse(cfg.Source.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("source.url %q isn't an http(s) URL", cfg.Source.URL),
				"Use the form http://192.168.4.1")
		}
	case SourceMQTT:
		if strings.TrimSpace(cfg.MQTT.Broker) == "" {
			return errors.New(errors.ErrConfig,
				"mqtt.broker is empty",
				"Set mqtt.broker, e.g. tcp://localhost:1883")
		}
		if len(cfg.MQTT.Topics) == 0 {
			return errors.New(errors.ErrConfig,
				"mqtt.topics is empty",
				"Subscribe to the bridge's topics, e.g. powmr/#")
		}
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown source.type %q", cfg.Source.Type),
			"Use 'http' or 'mqtt'.")
	}
	return nil
}

func validatePoll(p PollConfig) error {
	if p.IntervalDuration() < poll.MinInterval {
		return fmt.Errorf("poll.interval must be at least %s (got %gs)", poll.MinInterval, p.Interval)
	}
	if p.IntervalField != "" {
		if !strings.Contains(p.IntervalField, ".") {
			return fmt.Errorf("poll.interval_field %q should look like section.field", p.IntervalField)
		}
		if !format.IsTimeUnit(p.IntervalFieldUnit) {
			return fmt.Errorf("poll.interval_field_unit %q isn't a time unit", p.IntervalFieldUnit)
		}
	}
	return nil
}
