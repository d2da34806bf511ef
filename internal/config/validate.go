package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("defaults config: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}
	return nil
}

// Validate checks the logging configuration.
func (l *LoggingConfig) Validate() error {
	if _, err := logrus.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("invalid log level %q", l.Level)
	}
	if l.Format != "json" && l.Format != "text" {
		return fmt.Errorf("invalid log format %q, must be json or text", l.Format)
	}
	if l.Output == "" {
		return fmt.Errorf("log output cannot be empty")
	}
	if l.MaxSize <= 0 {
		return fmt.Errorf("log max_size must be positive, got %d", l.MaxSize)
	}
	return nil
}

// Validate checks the command default values.
func (d *DefaultsConfig) Validate() error {
	if _, err := ParseRate(d.Rate); err != nil {
		return fmt.Errorf("invalid default rate %q: %w", d.Rate, err)
	}
	if _, err := rational.ParseRoundMode(d.Rounding); err != nil {
		return fmt.Errorf("invalid default rounding %q: %w", d.Rounding, err)
	}
	if d.RuntimePrecision < 0 {
		return fmt.Errorf("runtime_precision cannot be negative, got %d", d.RuntimePrecision)
	}
	return nil
}

// Validate checks the output configuration.
func (o *OutputConfig) Validate() error {
	if o.Style != "table" && o.Style != "plain" {
		return fmt.Errorf("invalid output style %q, must be table or plain", o.Style)
	}
	return nil
}

// ParseRate reads a rate setting, inferring the NTSC classification from its
// shape: a trailing "df" or "ndf" token forces drop or non-drop, decimal
// forms like "29.97" are taken as NTSC non-drop, and whole or fraction forms
// are taken exactly.
func ParseRate(s string) (rate.Framerate, error) {
	value := strings.TrimSpace(s)
	ntsc := rate.NTSCNone

	lower := strings.ToLower(value)
	switch {
	case strings.HasSuffix(lower, "ndf"):
		ntsc = rate.NTSCNonDrop
		value = strings.TrimSpace(value[:len(value)-3])
	case strings.HasSuffix(lower, "df"):
		ntsc = rate.NTSCDrop
		value = strings.TrimSpace(value[:len(value)-2])
	case strings.Contains(value, "."):
		ntsc = rate.NTSCNonDrop
	}

	return rate.Parse(value, ntsc)
}

// DefaultRate parses the configured default rate. Validate must have
// accepted the config first.
func (c *Config) DefaultRate() rate.Framerate {
	r, err := ParseRate(c.Defaults.Rate)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRounding parses the configured default rounding mode. Validate must
// have accepted the config first.
func (c *Config) DefaultRounding() rational.RoundMode {
	mode, err := rational.ParseRoundMode(c.Defaults.Rounding)
	if err != nil {
		panic(err)
	}
	return mode
}
