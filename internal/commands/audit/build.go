// Package auditcmd exposes the readiness report builder to host command
// buses through github.com/goliatone/go-command messages.
package auditcmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-content-audit/assets"
	"github.com/goliatone/go-content-audit/internal/commands"
	"github.com/goliatone/go-content-audit/internal/logging"
	"github.com/goliatone/go-content-audit/naming"
	"github.com/goliatone/go-content-audit/pkg/interfaces"
	"github.com/goliatone/go-content-audit/report"
)

const buildReportMessageType = "audit.report.build"

// BuildReportCommand requests a readiness report for one document.
type BuildReportCommand struct {
	Markup       string                  `json:"markup"`
	Assets       []assets.Record         `json:"assets,omitempty"`
	Metadata     []assets.ImportedRecord `json:"metadata,omitempty"`
	Template     naming.Template         `json:"template"`
	TaxonomyTags []string                `json:"taxonomy_tags,omitempty"`
	FeaturedURL  string                  `json:"featured_url,omitempty"`
	Date         time.Time               `json:"date,omitempty"`
}

// Type implements command.Message.
func (BuildReportCommand) Type() string { return buildReportMessageType }

// Validate rejects payloads that would fail the naming contract before the
// engine runs.
func (m BuildReportCommand) Validate() error {
	errs := validation.Errors{}
	if err := m.Template.Validate(); err != nil {
		errs["template"] = err
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportSink receives the built report; hosts typically persist it or push
// it to the preview UI.
type ReportSink func(*report.Report)

// BuildReportHandler executes BuildReportCommand messages.
type BuildReportHandler struct {
	reports report.Service
	logger  interfaces.Logger
	timeout time.Duration
	sink    ReportSink
}

// BuildReportOption customises the handler.
type BuildReportOption func(*BuildReportHandler)

// BuildReportWithTimeout overrides the default execution timeout.
func BuildReportWithTimeout(timeout time.Duration) BuildReportOption {
	return func(h *BuildReportHandler) {
		h.timeout = timeout
	}
}

// BuildReportWithSink registers the destination for built reports.
func BuildReportWithSink(sink ReportSink) BuildReportOption {
	return func(h *BuildReportHandler) {
		h.sink = sink
	}
}

// NewBuildReportHandler constructs a handler wired to the provided report service.
func NewBuildReportHandler(reports report.Service, logger interfaces.Logger, opts ...BuildReportOption) *BuildReportHandler {
	handler := &BuildReportHandler{
		reports: reports,
		logger:  commands.EnsureLogger(logger),
		timeout: commands.DefaultCommandTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Execute satisfies command.Commander[BuildReportCommand].
func (h *BuildReportHandler) Execute(ctx context.Context, msg BuildReportCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	rep, err := h.reports.Build(ctx, report.BuildRequest{
		Markup:       msg.Markup,
		Assets:       msg.Assets,
		Metadata:     msg.Metadata,
		Template:     msg.Template,
		TaxonomyTags: msg.TaxonomyTags,
		FeaturedURL:  msg.FeaturedURL,
		Date:         msg.Date,
	})
	if err != nil {
		return commands.WrapExecuteError(err)
	}

	if h.sink != nil {
		h.sink(rep)
	}

	logging.WithFields(h.logger, map[string]any{
		"operation":            "report.build",
		"balance_errors":       len(rep.Balance.Errors),
		"pending_placeholders": rep.Placeholders.Count,
		"url_mismatches":       rep.URLs.MismatchCount,
		"mappings":             len(rep.Mappings),
	}).Info("audit.command.report_built")
	return nil
}
