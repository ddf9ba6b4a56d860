package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-content-audit/assets"
	"github.com/goliatone/go-content-audit/internal/logging"
	"github.com/goliatone/go-content-audit/markup"
	"github.com/goliatone/go-content-audit/naming"
	"github.com/goliatone/go-content-audit/pkg/interfaces"
)

const templateInvalidCode = "REPORT_TEMPLATE_INVALID"

// reportNamespace seeds name-based report IDs so the same request always
// yields the same uuid.
var reportNamespace = uuid.MustParse("5d12c7f0-8a34-4c2b-9e1d-6f0b3a7c4e21")

// BuildRequest carries everything one readiness report needs. The engine
// fetches nothing on its own; every input is supplied by the caller.
type BuildRequest struct {
	Markup       string
	Assets       []assets.Record
	Metadata     []assets.ImportedRecord
	Template     naming.Template
	TaxonomyTags []string
	FeaturedURL  string
	Date         time.Time
}

// Service builds readiness reports. Build is a pure function of its
// request: identical inputs yield identical reports, including the
// report ID, so callers may invoke it on every save or preview render
// and memoize results by request.
type Service interface {
	Build(ctx context.Context, req BuildRequest) (*Report, error)
}

type service struct {
	logger interfaces.Logger
}

// Option customises the report service.
type Option func(*service)

// WithLogger injects the logger used for build summaries.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the report builder.
func NewService(opts ...Option) Service {
	s := &service{logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) Build(ctx context.Context, req BuildRequest) (*Report, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// Contract violations fail fast, before any matching runs.
	if err := req.Template.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "naming template violates its contract").
			WithTextCode(templateInvalidCode)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	rep := &Report{
		ID:           uuid.NewSHA1(reportNamespace, requestFingerprint(req, date)),
		GeneratedAt:  date,
		Balance:      markup.ValidateTagBalance(req.Markup),
		Links:        markup.ScanLinkTargets(req.Markup),
		Taxonomy:     markup.CheckTaxonomy(req.Markup, req.TaxonomyTags),
		Placeholders: CheckPlaceholderPresence(req.Markup),
		URLs:         CheckURLConsistency(req.Markup, req.Assets, req.FeaturedURL, req.Template, date),
		Ordered:      assets.ResolveOrder(req.Markup, req.Assets, req.FeaturedURL),
		Mappings:     assets.Match(req.Assets, req.Metadata, req.Markup),
	}

	logging.WithFields(s.logger, map[string]any{
		"operation":            "report.build",
		"balance_errors":       len(rep.Balance.Errors),
		"link_issue":           rep.Links.HasIssue,
		"pending_placeholders": rep.Placeholders.Count,
		"url_mismatches":       rep.URLs.MismatchCount,
		"assets":               len(req.Assets),
		"mappings":             len(rep.Mappings),
	}).Debug("report.build.complete")

	return rep, nil
}

// requestFingerprint serializes every build input into a stable byte
// sequence for name-based ID derivation.
func requestFingerprint(req BuildRequest, date time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%q|%q|%q|%q|%q|%d|",
		req.Markup, req.FeaturedURL,
		req.Template.BasePath, req.Template.Prefix, req.Template.FileSuffix,
		date.Unix())
	for _, tag := range req.TaxonomyTags {
		fmt.Fprintf(&buf, "t:%q|", tag)
	}
	for _, rec := range req.Assets {
		fmt.Fprintf(&buf, "a:%q,%q,%q,%q,%d,%d,%d|",
			rec.URL, rec.Filename, rec.Alt, rec.Title, rec.SizeBytes, rec.DocOrder, rec.UploadedAt.Unix())
	}
	for _, rec := range req.Metadata {
		fmt.Fprintf(&buf, "m:%d,%q,%q,%q|",
			rec.Order, rec.FileName, rec.AltText, rec.SearchTitle)
	}
	return buf.Bytes()
}
