package assets

import (
	"strings"

	"github.com/goliatone/go-content-audit/markup"
)

// Match assigns imported metadata records to uploaded assets in three
// strict priority phases: the featured record first, then records
// addressed by numeric placeholders in the markup, then everything left in
// ascending order. Used indices are threaded through every phase so no
// asset and no metadata record is consumed twice.
//
// Trailing metadata with no available asset is silently dropped; surplus
// assets simply receive no mapping. Both are observed policy, not defects.
func Match(records []Record, metadata []ImportedRecord, markupText string) []Mapping {
	var mappings []Mapping
	usedAssets := make(map[int]bool, len(records))
	usedMetadata := make(map[int]bool, len(metadata))

	claim := func(metaIdx int, kind MatchType) {
		assetIdx := pickAsset(records, usedAssets, metadata[metaIdx].FileName)
		if assetIdx < 0 {
			return
		}
		usedAssets[assetIdx] = true
		usedMetadata[metaIdx] = true
		mappings = append(mappings, Mapping{
			AssetIndex:    assetIdx,
			MetadataIndex: metaIdx,
			MatchType:     kind,
		})
	}

	// Featured phase: metadata[0] describes the featured asset.
	if len(metadata) > 0 && len(records) > 0 {
		claim(0, MatchFeatured)
	}

	// Placeholder phase: a placeholder value addresses the metadata slice
	// directly, since index 0 is reserved for the featured record.
	for _, p := range markup.ExtractPlaceholders(markupText) {
		if p < 0 || p >= len(metadata) || usedMetadata[p] {
			continue
		}
		claim(p, MatchPlaceholder)
	}

	// Remainder phase: whatever metadata survives, in ascending order.
	for i := 1; i < len(metadata); i++ {
		if usedMetadata[i] {
			continue
		}
		claim(i, MatchOrder)
	}

	return mappings
}

// pickAsset returns the first unused asset whose normalized filename
// contains the normalized metadata filename or vice versa, falling back to
// the first unused asset in ascending index order. Returns -1 when every
// asset is spoken for.
func pickAsset(records []Record, used map[int]bool, fileName string) int {
	target := NormalizeFilename(fileName)
	if target != "" {
		for i, rec := range records {
			if used[i] {
				continue
			}
			candidate := NormalizeFilename(rec.Filename)
			if candidate == "" {
				continue
			}
			if strings.Contains(candidate, target) || strings.Contains(target, candidate) {
				return i
			}
		}
	}
	for i := range records {
		if !used[i] {
			return i
		}
	}
	return -1
}
