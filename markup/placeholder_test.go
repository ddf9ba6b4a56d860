package markup_test

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-content-audit/markup"
)

func TestEncodePlaceholders(t *testing.T) {
	t.Parallel()

	input := `<p><img src="https://cdn.example.com/a.jpg" alt="a"></p>` +
		`<img class="wide" src='https://cdn.example.com/b.jpg'>`

	encoded, urls := markup.EncodePlaceholders(input)

	wantURLs := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}
	if !reflect.DeepEqual(urls, wantURLs) {
		t.Fatalf("expected urls %v, got %v", wantURLs, urls)
	}
	want := `<p><img src="1" alt="a"></p><img class="wide" src='2'>`
	if encoded != want {
		t.Fatalf("expected %q, got %q", want, encoded)
	}
}

func TestEncodePlaceholdersSkipsImgWithoutSrc(t *testing.T) {
	t.Parallel()

	encoded, urls := markup.EncodePlaceholders(`<img alt="no source"><img src="x.jpg">`)
	if len(urls) != 1 || urls[0] != "x.jpg" {
		t.Fatalf("expected only sourced img to encode, got %v", urls)
	}
	if encoded != `<img alt="no source"><img src="1">` {
		t.Fatalf("unexpected encoding %q", encoded)
	}
}

func TestExtractPlaceholders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "bare_numbers",
			input: `<img src="2"><img src="1">`,
			want:  []int{2, 1},
		},
		{
			name:  "bracketed",
			input: `<img src="[3]"><img src="[10]">`,
			want:  []int{3, 10},
		},
		{
			name:  "skips_real_urls",
			input: `<img src="https://x.com/1.jpg"><img src="4">`,
			want:  []int{4},
		},
		{
			name:  "skips_empty",
			input: `<img src=""><img src="7">`,
			want:  []int{7},
		},
		{
			name:  "no_images",
			input: `<p>text</p>`,
			want:  nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := markup.ExtractPlaceholders(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPlaceholderRoundTrip(t *testing.T) {
	t.Parallel()

	input := `<h1>title</h1>` +
		`<img src="https://cdn.example.com/one.jpg">` +
		`<p>middle</p>` +
		`<img src='https://cdn.example.com/two.jpg'>` +
		`<img src="https://cdn.example.com/three.jpg">`

	encoded, urls := markup.EncodePlaceholders(input)
	if len(urls) != 3 {
		t.Fatalf("expected three urls, got %v", urls)
	}

	got := markup.ExtractPlaceholders(encoded)
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected round trip %v, got %v", want, got)
	}
}

func TestExtractImageAlts(t *testing.T) {
	t.Parallel()

	input := `<img src="1" alt="dog at park"><img src="2"><img src="3" alt=''>`
	got := markup.ExtractImageAlts(input)
	if !reflect.DeepEqual(got, []string{"dog at park"}) {
		t.Fatalf("expected single alt, got %v", got)
	}
}

func TestIsPlaceholderValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"[12]", true},
		{" 3 ", true},
		{"", false},
		{"a1", false},
		{"https://x.com/1.jpg", false},
	}
	for _, tc := range cases {
		if got := markup.IsPlaceholderValue(tc.value); got != tc.want {
			t.Fatalf("IsPlaceholderValue(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
