package markup

import (
	"regexp"
	"strings"
)

var (
	faqsCategoryRe = regexp.MustCompile(`(?is)\[\s*faqs\b[^\]]*?\bcategory\s*=\s*("([^"]*)"|'([^']*)'|([^\s\]]+))`)
	faqsBareRe     = regexp.MustCompile(`(?is)\[\s*faqs\s*\]`)
)

// CheckTaxonomy validates the category argument of the first recognized
// faqs shortcode against the tenant allow-list. The bare form carries no
// category and never mismatches; a document without the shortcode has
// nothing to check.
func CheckTaxonomy(input string, allowedTags []string) TaxonomyResult {
	if m := faqsCategoryRe.FindStringSubmatch(input); m != nil {
		category := shortcodeArgValue(m)
		for _, tag := range allowedTags {
			if strings.EqualFold(strings.TrimSpace(tag), category) {
				return TaxonomyResult{Matches: true, FoundCategory: &category}
			}
		}
		return TaxonomyResult{FoundCategory: &category}
	}
	if faqsBareRe.MatchString(input) {
		empty := ""
		return TaxonomyResult{Matches: true, FoundCategory: &empty}
	}
	return TaxonomyResult{Matches: true}
}

func shortcodeArgValue(m []string) string {
	switch {
	case strings.HasPrefix(m[1], `"`):
		return m[2]
	case strings.HasPrefix(m[1], `'`):
		return m[3]
	default:
		return m[4]
	}
}
