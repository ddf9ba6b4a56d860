package runtimeconfig

import (
	"errors"
	"strings"

	"github.com/goliatone/go-content-audit/naming"
)

var ErrLoggingProviderRequired = errors.New("audit config: logging provider is required when the logger feature is enabled")
var ErrLoggingProviderUnknown = errors.New("audit config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("audit config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("audit config: logging format is invalid")
var ErrTaxonomyTagBlank = errors.New("audit config: taxonomy allow-list entries cannot be blank")

// Config aggregates per-tenant defaults and feature flags for the audit
// engine. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Naming       naming.Template
	TaxonomyTags []string
	Markdown     MarkdownConfig
	Logging      LoggingConfig
	Features     Features
}

// Features toggles module functionality.
type Features struct {
	Markdown bool
	Logger   bool
}

// MarkdownConfig controls how Markdown sources are rendered before auditing.
type MarkdownConfig struct {
	HardWraps  bool
	SafeMode   bool
	Extensions []string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration: markdown rendering on,
// logging off until the host opts in.
func DefaultConfig() Config {
	return Config{
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm"},
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		Features: Features{
			Markdown: true,
		},
	}
}

// Validate checks config invariants before the engine is constructed.
func (c Config) Validate() error {
	if !c.Naming.IsZero() {
		if err := c.Naming.Validate(); err != nil {
			return err
		}
	}
	for _, tag := range c.TaxonomyTags {
		if strings.TrimSpace(tag) == "" {
			return ErrTaxonomyTagBlank
		}
	}

	if c.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(c.Logging.Provider))
		switch provider {
		case "":
			return ErrLoggingProviderRequired
		case "gologger", "noop":
		default:
			return ErrLoggingProviderUnknown
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}
	return nil
}
