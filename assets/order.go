package assets

import (
	"strings"

	"github.com/goliatone/go-content-audit/markup"
)

// ResolveOrder computes the display order of records so it mirrors their
// reference order in the markup. Placeholder numbers are the primary
// signal; when none are present the resolver falls back to matching <img>
// alt texts against filenames. Records never referenced keep their
// original relative order at the tail. The featured record, when present,
// is always the final element.
func ResolveOrder(markupText string, records []Record, featuredURL string) []Record {
	var featured *Record
	rest := make([]Record, 0, len(records))
	for i := range records {
		if featured == nil && featuredURL != "" && records[i].URL == featuredURL {
			featured = &records[i]
			continue
		}
		rest = append(rest, records[i])
	}

	used := make([]bool, len(rest))
	out := make([]Record, 0, len(records))

	if placeholders := markup.ExtractPlaceholders(markupText); len(placeholders) > 0 {
		for _, p := range placeholders {
			idx := p - 1
			if idx < 0 || idx >= len(rest) || used[idx] {
				continue
			}
			used[idx] = true
			out = append(out, rest[idx])
		}
	} else {
		for _, alt := range markup.ExtractImageAlts(markupText) {
			target := normalizeText(alt)
			if target == "" {
				continue
			}
			// Single best-effort pass: first unused candidate wins.
			for i := range rest {
				if used[i] {
					continue
				}
				candidate := NormalizeFilename(rest[i].Filename)
				if candidate == "" {
					continue
				}
				if strings.Contains(candidate, target) || strings.Contains(target, candidate) {
					used[i] = true
					out = append(out, rest[i])
					break
				}
			}
		}
	}

	for i := range rest {
		if !used[i] {
			out = append(out, rest[i])
		}
	}
	if featured != nil {
		out = append(out, *featured)
	}
	return out
}
