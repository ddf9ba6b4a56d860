package assets

import "time"

// Record describes a single uploaded binary asset. Records arrive in upload
// order; an asset's index within that slice is positional and only
// meaningful for the duration of a single call.
type Record struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
	Alt        string    `json:"alt,omitempty"`
	Title      string    `json:"title,omitempty"`
	DocOrder   int       `json:"doc_order,omitempty"`
}

// ImportedRecord is one externally authored metadata block. Order is
// 1-based; order 1 is reserved for the record describing the featured
// asset. The remaining records follow document encounter order.
type ImportedRecord struct {
	Order       int    `json:"order"`
	FileName    string `json:"file_name,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	SearchTitle string `json:"search_title,omitempty"`
}

// MatchType records which matcher phase produced a mapping.
type MatchType string

const (
	MatchFeatured    MatchType = "featured"
	MatchPlaceholder MatchType = "placeholder"
	MatchOrder       MatchType = "order"
)

// Mapping assigns one metadata record to one asset. Within a single match
// invocation no asset index and no metadata index ever appears twice.
type Mapping struct {
	AssetIndex    int       `json:"asset_index"`
	MetadataIndex int       `json:"metadata_index"`
	MatchType     MatchType `json:"match_type"`
}
