package cli

import (
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/invdash/internal/config"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/format"
	"github.com/rileyhilliard/invdash/internal/logger"
	"github.com/rileyhilliard/invdash/internal/poll"
	"github.com/rileyhilliard/invdash/internal/source"
)

// app bundles what the dashboard commands need.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	ctrl  *poll.Controller
	label string // source shown in the header

	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// loadConfig finds, loads and validates the config, applying --url.
func loadConfig() (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if urlFlag != "" {
		cfg.Source.URL = urlFlag
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColor sets the lipgloss color profile from --no-color and output.color.
func applyColor(mode string) {
	switch {
	case noColor || mode == "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// newLogger picks the log destination. tui selects log.file or nothing so
// log lines never corrupt the screen.
func newLogger(cfg *config.Config, tui bool) (logger.Logger, func(), error) {
	if !tui {
		return logger.NewWithLevel(os.Stderr, "invdash", cfg.Log.Level), func() {}, nil
	}
	if cfg.Log.File == "" {
		return logger.Noop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+cfg.Log.File,
			"Check log.file in .invdash.yaml")
	}
	return logger.NewWithLevel(f, "invdash", cfg.Log.Level), func() { _ = f.Close() }, nil
}

// newFormatter builds the value formatter from config.
func newFormatter(cfg *config.Config) *format.Formatter {
	return &format.Formatter{
		Missing:         cfg.Format.Missing,
		DurationSection: cfg.Format.DurationSection,
		DurationFields:  cfg.Format.DurationFields,
	}
}

// newSources builds the status and metadata sources for cfg.
func newSources(cfg *config.Config, log logger.Logger) (source.StatusSource, source.MetadataSource, string, func(), error) {
	httpSrc := source.NewHTTP(source.HTTPConfig{
		BaseURL:    cfg.Source.URL,
		StatusPath: cfg.Source.StatusPath,
		NamesPath:  cfg.Source.NamesPath,
		Timeout:    cfg.Source.Timeout,
	})

	var meta source.MetadataSource = httpSrc
	if cfg.Source.NamesFile != "" {
		meta = source.FileMetadata{Path: cfg.Source.NamesFile}
	}

	if cfg.Source.Type != config.SourceMQTT {
		return httpSrc, meta, cfg.Source.URL, func() {}, nil
	}

	mq := source.NewMQTT(source.MQTTConfig{
		Broker:   cfg.MQTT.Broker,
		ClientID: cfg.MQTT.ClientID,
		Username: cfg.MQTT.Username,
		Password: cfg.MQTT.Password,
		Topics:   cfg.MQTT.Topics,
		Timeout:  cfg.Source.Timeout,
	}, log)
	if err := mq.Connect(); err != nil {
		return nil, nil, "", nil, err
	}
	return mq, meta, cfg.MQTT.Broker, mq.Close, nil
}

// newApp loads config and wires a controller. interval overrides
// poll.interval when positive.
func newApp(tui bool, interval time.Duration) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	applyColor(cfg.Output.Color)

	log, closeLog, err := newLogger(cfg, tui)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, closers: []func(){closeLog}}

	status, meta, label, closeSrc, err := newSources(cfg, log)
	if err != nil {
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, closeSrc)
	a.label = label

	if interval <= 0 {
		interval = cfg.Poll.IntervalDuration()
	}
	a.ctrl = poll.New(poll.Options{
		Status:            status,
		Metadata:          meta,
		Formatter:         newFormatter(cfg),
		Interval:          interval,
		IntervalField:     cfg.Poll.IntervalField,
		IntervalFieldUnit: cfg.Poll.IntervalFieldUnit,
		Log:               log,
	})
	return a, nil
}
