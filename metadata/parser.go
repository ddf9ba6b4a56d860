// Package metadata parses the loosely structured labeled-block text that
// editorial imports supply alongside uploaded assets. The format is a
// sequence of case-insensitive headings, each followed by exactly one
// non-blank value line; an IMAGE URL heading starts a new record and blank
// lines are skipped.
package metadata

import (
	"strings"

	"github.com/goliatone/go-content-audit/assets"
)

type fieldKind int

const (
	fieldNone fieldKind = iota
	fieldURL
	fieldFileName
	fieldAltText
	fieldSearchTitle
)

// Parse converts text into ordered ImportedRecord values. Order is 1-based
// in encounter order; order 1 describes the featured asset. Parse is
// total: malformed input yields fewer fields, never an error.
func Parse(text string) []assets.ImportedRecord {
	var records []assets.ImportedRecord
	current := -1
	pending := fieldNone

	start := func() {
		records = append(records, assets.ImportedRecord{Order: len(records) + 1})
		current = len(records) - 1
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if kind := headingKind(line); kind != fieldNone {
			if kind == fieldURL || current < 0 {
				start()
			}
			pending = kind
			continue
		}

		if pending == fieldNone || current < 0 {
			continue
		}
		switch pending {
		case fieldFileName:
			records[current].FileName = line
		case fieldAltText:
			records[current].AltText = line
		case fieldSearchTitle:
			records[current].SearchTitle = line
		case fieldURL:
			// The URL value only delimits records; reconciliation derives
			// deployment URLs from the naming template instead.
		}
		pending = fieldNone
	}

	return records
}

func headingKind(line string) fieldKind {
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "IMAGE URL"):
		return fieldURL
	case strings.Contains(upper, "IMAGE FILE NAME"):
		return fieldFileName
	case strings.Contains(upper, "IMAGE ALT"), strings.Contains(upper, "IMAGE DESCRIPTION"):
		return fieldAltText
	case strings.Contains(upper, "IMAGE") && (strings.Contains(upper, "SEARCH") || strings.Contains(upper, "TITLE")):
		return fieldSearchTitle
	}
	return fieldNone
}
