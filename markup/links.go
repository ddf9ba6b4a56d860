package markup

import (
	"regexp"
	"strings"
)

var (
	openingTagRe = regexp.MustCompile(`(?is)<([a-z][a-z0-9]*)\b[^>]*>`)
	hrefAttrRe   = regexp.MustCompile(`(?is)\bhref\s*=\s*("([^"]*)"|'([^']*)'|([^\s>]+))`)
	classAttrRe  = regexp.MustCompile(`(?is)\bclass\s*=\s*("([^"]*)"|'([^']*)')`)
)

// ScanLinkTargets finds anchors and button-styled elements whose navigation
// target is missing: no href attribute, an empty value, or a bare "#".
// The scan is a single forward pass; the first offending tag carries the
// lowest offset.
func ScanLinkTargets(input string) LinkScan {
	for _, loc := range openingTagRe.FindAllStringSubmatchIndex(input, -1) {
		tag := input[loc[0]:loc[1]]
		name := strings.ToLower(input[loc[2]:loc[3]])
		if name != "a" && !hasButtonClass(tag) {
			continue
		}
		if missingTarget(tag) {
			return LinkScan{HasIssue: true, Offset: loc[0]}
		}
	}
	return LinkScan{Offset: -1}
}

func missingTarget(tag string) bool {
	m := hrefAttrRe.FindStringSubmatch(tag)
	if m == nil {
		return true
	}
	value := m[2]
	if value == "" {
		value = m[3]
	}
	if value == "" {
		value = m[4]
	}
	value = strings.TrimSpace(value)
	return value == "" || value == "#"
}

// hasButtonClass reports whether the tag's class attribute carries a btn or
// button token. Tokens are compared per whitespace-separated class name and
// per dash/underscore segment within each name, so "cta-button" counts.
func hasButtonClass(tag string) bool {
	m := classAttrRe.FindStringSubmatch(tag)
	if m == nil {
		return false
	}
	value := m[2]
	if value == "" {
		value = m[3]
	}
	for _, class := range strings.Fields(strings.ToLower(value)) {
		for _, segment := range strings.FieldsFunc(class, func(r rune) bool {
			return r == '-' || r == '_'
		}) {
			if segment == "btn" || segment == "button" {
				return true
			}
		}
	}
	return false
}
