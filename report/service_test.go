package report_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-content-audit/assets"
	"github.com/goliatone/go-content-audit/naming"
	"github.com/goliatone/go-content-audit/report"
)

func TestServiceBuild(t *testing.T) {
	t.Parallel()

	uploads := []assets.Record{
		{Filename: "acme-kitchen-web.jpg", URL: "https://uploads.example.com/1.jpg", Alt: "kitchen remodel"},
		{Filename: "acme-bathroom-web.jpg", URL: "https://uploads.example.com/2.jpg", Alt: "bathroom tile"},
	}
	metadata := []assets.ImportedRecord{
		{Order: 1, FileName: "kitchen.jpg", AltText: "Kitchen remodel"},
		{Order: 2, FileName: "bathroom.jpg", AltText: "Bathroom tile"},
	}

	svc := report.NewService()
	rep, err := svc.Build(context.Background(), report.BuildRequest{
		Markup:       `<div><p>Our work</p><img src="1" alt="kitchen"><img src="2" alt="bathroom"></div>[faqs category="Remodeling"]`,
		Assets:       uploads,
		Metadata:     metadata,
		Template:     testTemplate,
		TaxonomyTags: []string{"Remodeling", "Roofing"},
		Date:         testDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rep.Balance.Valid {
		t.Fatalf("expected balanced markup, got %+v", rep.Balance.Errors)
	}
	if rep.Links.HasIssue {
		t.Fatalf("expected no link issues, got %+v", rep.Links)
	}
	if !rep.Taxonomy.Matches {
		t.Fatalf("expected taxonomy match, got %+v", rep.Taxonomy)
	}
	if !rep.Placeholders.HasPending || rep.Placeholders.Count != 2 {
		t.Fatalf("expected two pending placeholders, got %+v", rep.Placeholders)
	}
	if rep.URLs.AllMatch {
		t.Fatalf("expected url mismatches while placeholders remain, got %+v", rep.URLs)
	}
	if len(rep.Ordered) != len(uploads) {
		t.Fatalf("expected all assets ordered, got %d", len(rep.Ordered))
	}
	if len(rep.Mappings) != 2 {
		t.Fatalf("expected two mappings, got %+v", rep.Mappings)
	}
	if rep.ID == uuid.Nil {
		t.Fatal("expected a generated report id")
	}
	if !rep.GeneratedAt.Equal(testDate) {
		t.Fatalf("expected generation timestamp %v, got %v", testDate, rep.GeneratedAt)
	}
}

func TestServiceBuildDeterministic(t *testing.T) {
	t.Parallel()

	req := report.BuildRequest{
		Markup: `<div><img src="1" alt="kitchen"></div>`,
		Assets: []assets.Record{
			{Filename: "acme-kitchen-web.jpg", URL: "https://uploads.example.com/1.jpg"},
		},
		Metadata: []assets.ImportedRecord{
			{Order: 1, FileName: "kitchen.jpg", AltText: "Kitchen remodel"},
		},
		Template:     testTemplate,
		TaxonomyTags: []string{"Remodeling"},
		Date:         testDate,
	}

	svc := report.NewService()
	first, err := svc.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := svc.Build(context.Background(), req)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical requests produced different reports:\n%+v\n%+v", first, second)
	}

	changed := req
	changed.Markup = `<div><img src="2" alt="bathroom"></div>`
	third, err := svc.Build(context.Background(), changed)
	if err != nil {
		t.Fatalf("third build: %v", err)
	}
	if third.ID == first.ID {
		t.Fatal("expected a different id for a different request")
	}
}

func TestServiceBuildInvalidTemplate(t *testing.T) {
	t.Parallel()

	svc := report.NewService()
	_, err := svc.Build(context.Background(), report.BuildRequest{
		Markup:   "<p>hi</p>",
		Template: naming.Template{BasePath: "https://cdn.example.com/media", FileSuffix: "-web"},
	})
	if err == nil {
		t.Fatal("expected validation error for template without trailing slash")
	}

	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestServiceBuildCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := report.NewService()
	if _, err := svc.Build(ctx, report.BuildRequest{Markup: "<p>hi</p>", Template: testTemplate}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestServiceBuildDefaultsDate(t *testing.T) {
	t.Parallel()

	uploads := []assets.Record{{Filename: "photo.jpg", URL: "https://uploads.example.com/photo.jpg"}}
	expected := testTemplate.BuildURL("photo.jpg", time.Now())

	svc := report.NewService()
	rep, err := svc.Build(context.Background(), report.BuildRequest{
		Markup:   `<img src="` + expected + `">`,
		Assets:   uploads,
		Template: testTemplate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rep.URLs.AllMatch {
		t.Fatalf("expected zero-date build to use current date, got %+v", rep.URLs)
	}
}
