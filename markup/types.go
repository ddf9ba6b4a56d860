package markup

// ErrorKind classifies a structural defect found while scanning markup.
type ErrorKind string

const (
	KindUnclosedTag         ErrorKind = "unclosed_tag"
	KindMismatchedTag       ErrorKind = "mismatched_tag"
	KindUnclosedQuote       ErrorKind = "unclosed_quote"
	KindMissingCloseBracket ErrorKind = "missing_close_bracket"
	KindStrayClosingTag     ErrorKind = "stray_closing_tag"
	KindEmptyContent        ErrorKind = "empty_content"
)

// Error is a single positioned diagnostic. Position is a 0-based byte
// offset into the scanned document, or -1 when no position applies.
type Error struct {
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"message"`
	Position int       `json:"position"`
}

// Result aggregates the diagnostics of a balance scan. Valid is true iff
// no error was recorded.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors,omitempty"`
}

// LinkScan reports anchors and button-styled elements with no usable
// navigation target. Offset is the byte offset of the first offending tag,
// or -1 when the document is clean.
type LinkScan struct {
	HasIssue bool `json:"has_issue"`
	Offset   int  `json:"offset"`
}

// TaxonomyResult reports the category argument found on the first
// recognized shortcode. FoundCategory is nil when no shortcode is present
// and points at the empty string for the bare form.
type TaxonomyResult struct {
	Matches       bool    `json:"matches"`
	FoundCategory *string `json:"found_category,omitempty"`
}
