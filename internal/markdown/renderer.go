// Package markdown renders Markdown sources to the HTML the publisher
// would emit, so audits inspect the final markup rather than the authored
// text.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options control how Markdown sources are rendered before auditing.
// Unsafe must stay enabled for documents that embed raw HTML, otherwise
// the very tags the audit inspects are stripped from the output.
type Options struct {
	HardWraps  bool
	Unsafe     bool
	Extensions []string
}

// Renderer converts Markdown into HTML. It is stateless, so a single
// instance can be shared across calls without locking.
type Renderer struct {
	defaults Options
}

// NewRenderer constructs a renderer with the supplied defaults.
func NewRenderer(defaults Options) *Renderer {
	return &Renderer{defaults: defaults}
}

// Render converts source using the renderer's default options.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	return r.RenderWithOptions(source, r.defaults)
}

// RenderWithOptions converts source using the provided options.
func (r *Renderer) RenderWithOptions(source []byte, opts Options) ([]byte, error) {
	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// collectExtensions maps extension names onto goldmark extenders; unknown
// names are ignored.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
		}
	}
	return extenders
}
