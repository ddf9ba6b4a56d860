package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-content-audit/internal/runtimeconfig"
	"github.com/goliatone/go-content-audit/naming"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := runtimeconfig.DefaultConfig()
	if !cfg.Features.Markdown {
		t.Fatal("expected markdown feature on by default")
	}
	if cfg.Features.Logger {
		t.Fatal("expected logger feature off by default")
	}
	if cfg.Logging.Provider != "gologger" {
		t.Fatalf("unexpected default logging provider %q", cfg.Logging.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := runtimeconfig.DefaultConfig()
	valid.Naming = naming.Template{
		BasePath:   "https://cdn.example.com/media/",
		FileSuffix: "-web",
	}
	valid.TaxonomyTags = []string{"Remodeling"}

	cases := []struct {
		name    string
		mutate  func(*runtimeconfig.Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*runtimeconfig.Config) {},
		},
		{
			name: "zero_naming_skipped",
			mutate: func(c *runtimeconfig.Config) {
				c.Naming = naming.Template{}
			},
		},
		{
			name: "blank_taxonomy_tag",
			mutate: func(c *runtimeconfig.Config) {
				c.TaxonomyTags = []string{"Roofing", "  "}
			},
			wantErr: runtimeconfig.ErrTaxonomyTagBlank,
		},
		{
			name: "logger_requires_provider",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Provider = ""
			},
			wantErr: runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name: "logger_unknown_provider",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Provider = "zap"
			},
			wantErr: runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name: "logger_invalid_level",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Level = "verbose"
			},
			wantErr: runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "logger_invalid_format",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Format = "xml"
			},
			wantErr: runtimeconfig.ErrLoggingFormatInvalid,
		},
		{
			name: "logger_disabled_ignores_logging",
			mutate: func(c *runtimeconfig.Config) {
				c.Features.Logger = false
				c.Logging.Provider = "zap"
				c.Logging.Level = "verbose"
			},
		},
		{
			name: "naming_without_slash",
			mutate: func(c *runtimeconfig.Config) {
				c.Naming.BasePath = "https://cdn.example.com/media"
			},
			wantErr: errAnything,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			switch {
			case tc.wantErr == nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			case tc.wantErr == errAnything:
				if err == nil {
					t.Fatal("expected validation error")
				}
			default:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			}
		})
	}
}

var errAnything = errors.New("any error")
