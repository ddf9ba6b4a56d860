package assets

import (
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-content-audit/naming"
)

// NormalizeFilename reduces a filename to its comparable form: the naming
// stem, slugified, stripped down to [a-z0-9]. Two filenames match when one
// normalized form contains the other.
func NormalizeFilename(name string) string {
	return normalizeText(naming.Stem(name))
}

func normalizeText(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	normalized, err := slug.Normalize(value)
	if err != nil {
		normalized = strings.ToLower(value)
	}

	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
