// Package audit is the content integrity and asset reconciliation engine:
// a deterministic, side-effect-free core that validates markup structure,
// reconciles uploaded assets with imported metadata and embedded
// placeholders, derives the canonical asset order, and verifies deployment
// URLs against the tenant naming template. The engine performs no network,
// file, or database I/O; callers supply every input and persist whatever
// they need from the returned report.
package audit

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-content-audit/assets"
	"github.com/goliatone/go-content-audit/internal/logging"
	"github.com/goliatone/go-content-audit/internal/logging/gologger"
	"github.com/goliatone/go-content-audit/internal/markdown"
	"github.com/goliatone/go-content-audit/markup"
	"github.com/goliatone/go-content-audit/metadata"
	"github.com/goliatone/go-content-audit/naming"
	"github.com/goliatone/go-content-audit/pkg/interfaces"
	"github.com/goliatone/go-content-audit/report"
)

// ErrMarkdownDisabled is returned by BuildFromMarkdown when the markdown
// feature is switched off.
var ErrMarkdownDisabled = errors.New("audit: markdown feature is disabled")

// Exported domain contracts for consumers of the audit package.
type (
	Report                 = report.Report
	BuildRequest           = report.BuildRequest
	ReportService          = report.Service
	PlaceholderPresence    = report.PlaceholderPresence
	URLConsistency         = report.URLConsistency
	AssetRecord            = assets.Record
	ImportedMetadataRecord = assets.ImportedRecord
	AssetMapping           = assets.Mapping
	MatchType              = assets.MatchType
	NamingTemplate         = naming.Template
	ValidationError        = markup.Error
	ValidationResult       = markup.Result
	LinkScan               = markup.LinkScan
	TaxonomyResult         = markup.TaxonomyResult
	Logger                 = interfaces.Logger
	LoggerProvider         = interfaces.LoggerProvider
)

// Engine is the top level façade composing the audit services for one
// tenant. Every build is independent; the engine holds configuration and
// loggers, never document state.
type Engine struct {
	cfg         Config
	provider    interfaces.LoggerProvider
	reports     report.Service
	renderer    *markdown.Renderer
	markdownLog interfaces.Logger
}

// Option customises engine construction.
type Option func(*Engine)

// WithLoggerProvider injects a logger provider, overriding the one the
// logging configuration would build.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(e *Engine) {
		e.provider = provider
	}
}

// New constructs an engine from the supplied configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.provider == nil && cfg.Features.Logger {
		if strings.EqualFold(strings.TrimSpace(cfg.Logging.Provider), "gologger") {
			provider, err := gologger.NewProvider(gologger.Config{
				Level:     cfg.Logging.Level,
				Format:    cfg.Logging.Format,
				AddSource: cfg.Logging.AddSource,
				Focus:     cfg.Logging.Focus,
			})
			if err != nil {
				return nil, err
			}
			e.provider = provider
		}
	}

	e.reports = report.NewService(report.WithLogger(logging.ReportLogger(e.provider)))

	if cfg.Features.Markdown {
		e.renderer = markdown.NewRenderer(markdown.Options{
			HardWraps:  cfg.Markdown.HardWraps,
			Unsafe:     !cfg.Markdown.SafeMode,
			Extensions: cfg.Markdown.Extensions,
		})
		e.markdownLog = logging.MarkdownLogger(e.provider)
	}

	return e, nil
}

// Reports exposes the underlying report service for advanced integrations
// such as command-bus handlers.
func (e *Engine) Reports() report.Service {
	return e.reports
}

// LoggerProvider exposes the engine's logger provider so hosts can scope
// additional loggers consistently. Nil when logging is disabled.
func (e *Engine) LoggerProvider() interfaces.LoggerProvider {
	return e.provider
}

// Build runs every check over the supplied markup and assets and returns
// the readiness report. Tenant defaults fill in the naming template and
// taxonomy allow-list when the request leaves them empty.
func (e *Engine) Build(ctx context.Context, req BuildRequest) (*Report, error) {
	if req.Template.IsZero() {
		req.Template = e.cfg.Naming
	}
	if len(req.TaxonomyTags) == 0 {
		req.TaxonomyTags = e.cfg.TaxonomyTags
	}
	return e.reports.Build(ctx, req)
}

// BuildFromMarkdown renders a Markdown source to HTML and audits the
// result. A featured_image frontmatter value stands in for the featured
// URL when the request supplies none.
func (e *Engine) BuildFromMarkdown(ctx context.Context, source []byte, req BuildRequest) (*Report, error) {
	if e.renderer == nil {
		return nil, ErrMarkdownDisabled
	}

	meta, body, err := markdown.SplitFrontMatter(source)
	if err != nil {
		return nil, err
	}
	rendered, err := e.renderer.Render(body)
	if err != nil {
		return nil, err
	}

	logging.WithFields(e.markdownLog, map[string]any{
		"operation":      "markdown.render",
		"source_bytes":   len(source),
		"rendered_bytes": len(rendered),
		"frontmatter":    meta.Title != "" || meta.FeaturedImage != "",
	}).Debug("markdown.render.complete")

	req.Markup = string(rendered)
	if req.FeaturedURL == "" {
		req.FeaturedURL = meta.FeaturedImage
	}
	return e.Build(ctx, req)
}

// ParseImportedMetadata parses the labeled-block metadata text supplied by
// editorial imports into ordered records.
func ParseImportedMetadata(text string) []ImportedMetadataRecord {
	return metadata.Parse(text)
}
