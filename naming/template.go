package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	resizeSuffixRe = regexp.MustCompile(`-\d+x\d+$`)
	yearMonthRe    = regexp.MustCompile(`^/?\d{4}/\d{2}/`)
)

// Template is the per-tenant naming triple used to derive deployment URLs
// from uploaded filenames. The external contract requires BasePath to end
// with a slash and FileSuffix to lead with a dash; Validate enforces it at
// the boundary before any matching or consistency logic runs.
type Template struct {
	BasePath   string `json:"base_path"`
	Prefix     string `json:"prefix,omitempty"`
	FileSuffix string `json:"file_suffix,omitempty"`
}

// IsZero reports whether no template was supplied.
func (t Template) IsZero() bool {
	return t == Template{}
}

// Validate enforces the naming contract.
func (t Template) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(t.BasePath) == "" {
		errs["base_path"] = validation.NewError("audit.naming.base_path_required", "base path is required")
	} else if !strings.HasSuffix(t.BasePath, "/") {
		errs["base_path"] = validation.NewError("audit.naming.base_path_slash", "base path must end with a trailing slash")
	}
	if t.FileSuffix != "" && !strings.HasPrefix(t.FileSuffix, "-") {
		errs["file_suffix"] = validation.NewError("audit.naming.file_suffix_dash", "file suffix must start with a dash")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Stem reduces a filename to its naming stem: the final path segment
// without extension and without a trailing WxH resize suffix.
func Stem(filename string) string {
	name := strings.TrimSpace(filename)
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return resizeSuffixRe.ReplaceAllString(name, "")
}

// BuildURL derives the deployment URL for filename at the given date. It is
// pure and total: identical inputs always produce identical output.
func (t Template) BuildURL(filename string, date time.Time) string {
	return fmt.Sprintf("%s%04d/%02d/%s%s%s",
		t.BasePath, date.Year(), int(date.Month()), t.Prefix, Stem(filename), t.FileSuffix)
}

// ExtractStem is the best-effort inverse of BuildURL: it peels the base
// path, the /YYYY/MM/ segment, the prefix, and the file suffix off url and
// returns the lowercased stem. An empty url or zero template yields "".
func (t Template) ExtractStem(url string) string {
	if strings.TrimSpace(url) == "" || t.IsZero() {
		return ""
	}

	s := url
	if t.BasePath != "" {
		if strings.HasPrefix(s, t.BasePath) {
			s = s[len(t.BasePath):]
		} else if base := strings.TrimSuffix(t.BasePath, "/"); base != "" && strings.HasPrefix(s, base) {
			s = s[len(base):]
		}
	}
	s = yearMonthRe.ReplaceAllString(s, "")
	if t.Prefix != "" {
		if strings.HasPrefix(s, t.Prefix) {
			s = s[len(t.Prefix):]
		} else if i := strings.Index(s, t.Prefix); i >= 0 {
			s = s[i+len(t.Prefix):]
		}
	}
	if t.FileSuffix != "" {
		s = strings.TrimSuffix(s, t.FileSuffix)
	}
	s = strings.Trim(s, "/")
	if i := strings.LastIndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.ToLower(s))
}
