package markdown_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-content-audit/internal/markdown"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	source := []byte(`---
title: Kitchen Remodel Guide
slug: kitchen-remodel-guide
featured_image: https://uploads.example.com/hero.jpg
tags:
  - Remodeling
  - Kitchens
draft: true
---

# Kitchen Remodel Guide

Body text.
`)

	meta, body, err := markdown.SplitFrontMatter(source)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.Title != "Kitchen Remodel Guide" {
		t.Fatalf("unexpected title %q", meta.Title)
	}
	if meta.FeaturedImage != "https://uploads.example.com/hero.jpg" {
		t.Fatalf("unexpected featured image %q", meta.FeaturedImage)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "Remodeling" {
		t.Fatalf("unexpected tags %#v", meta.Tags)
	}
	if !meta.Draft {
		t.Fatal("expected draft flag")
	}
	if strings.Contains(string(body), "featured_image") {
		t.Fatalf("frontmatter leaked into body: %q", body)
	}
	if !strings.Contains(string(body), "# Kitchen Remodel Guide") {
		t.Fatalf("body missing content: %q", body)
	}
}

func TestSplitFrontMatterAbsent(t *testing.T) {
	t.Parallel()

	source := []byte("# Just a Doc\n\nNo header here.\n")
	meta, body, err := markdown.SplitFrontMatter(source)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.Title != "" || meta.FeaturedImage != "" {
		t.Fatalf("expected zero frontmatter, got %+v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("expected body unchanged, got %q", body)
	}
}
