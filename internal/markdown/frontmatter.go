package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter captures the structured header of an authored document. The
// featured image reference participates in reconciliation: when the caller
// supplies no featured URL, the frontmatter value stands in.
type FrontMatter struct {
	Title         string         `yaml:"title"`
	Slug          string         `yaml:"slug"`
	FeaturedImage string         `yaml:"featured_image"`
	Tags          []string       `yaml:"tags"`
	Author        string         `yaml:"author"`
	Date          time.Time      `yaml:"date"`
	Draft         bool           `yaml:"draft"`
	Custom        map[string]any `yaml:",inline"`
}

// SplitFrontMatter extracts the frontmatter and the Markdown body from
// source. Sources without a frontmatter block yield a zero FrontMatter and
// the unmodified body.
func SplitFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
