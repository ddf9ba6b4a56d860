package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-content-audit/assets"
	"github.com/goliatone/go-content-audit/markup"
	"github.com/goliatone/go-content-audit/naming"
)

// PlaceholderPresence counts <img> tags whose src is still an empty string
// or a numeric placeholder, meaning the document has not been reconciled to
// production URLs yet.
type PlaceholderPresence struct {
	HasPending bool `json:"has_pending"`
	Count      int  `json:"count"`
}

// URLConsistency reports how many expected deployment URLs are missing
// from the markup. It is only meaningful once no placeholders are pending.
type URLConsistency struct {
	AllMatch      bool `json:"all_match"`
	MismatchCount int  `json:"mismatch_count"`
}

// Report is the immutable readiness snapshot for one document and its
// assets. It is recomputed on every build and carries no lifecycle beyond
// the call that produced it; identical requests produce value-equal
// reports, so callers may memoize by input.
type Report struct {
	ID           uuid.UUID             `json:"id"`
	GeneratedAt  time.Time             `json:"generated_at"`
	Balance      markup.Result         `json:"balance"`
	Links        markup.LinkScan       `json:"links"`
	Taxonomy     markup.TaxonomyResult `json:"taxonomy"`
	Placeholders PlaceholderPresence   `json:"placeholders"`
	URLs         URLConsistency        `json:"urls"`
	Ordered      []assets.Record       `json:"ordered_assets"`
	Mappings     []assets.Mapping      `json:"mappings,omitempty"`
}

// CheckPlaceholderPresence counts image sources that still await
// reconciliation to production URLs.
func CheckPlaceholderPresence(markupText string) PlaceholderPresence {
	count := 0
	for _, src := range markup.ExtractImageSources(markupText) {
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || markup.IsPlaceholderValue(trimmed) {
			count++
		}
	}
	return PlaceholderPresence{HasPending: count > 0, Count: count}
}

// CheckURLConsistency verifies that every non-featured asset's expected
// deployment URL appears verbatim among the markup's non-placeholder image
// sources.
func CheckURLConsistency(markupText string, records []assets.Record, featuredURL string, tpl naming.Template, date time.Time) URLConsistency {
	seen := map[string]bool{}
	for _, src := range markup.ExtractImageSources(markupText) {
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || markup.IsPlaceholderValue(trimmed) {
			continue
		}
		seen[trimmed] = true
	}

	mismatches := 0
	for _, rec := range records {
		if featuredURL != "" && rec.URL == featuredURL {
			continue
		}
		if !seen[tpl.BuildURL(rec.Filename, date)] {
			mismatches++
		}
	}
	return URLConsistency{AllMatch: mismatches == 0, MismatchCount: mismatches}
}
