package audit

import "github.com/goliatone/go-content-audit/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrTaxonomyTagBlank        = runtimeconfig.ErrTaxonomyTagBlank
)

type (
	Config         = runtimeconfig.Config
	Features       = runtimeconfig.Features
	MarkdownConfig = runtimeconfig.MarkdownConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
