package resolver

import (
	"strings"

	"smart-trolley-be/pkg/catalog"
)

// Resolve fuzzy-matches an extracted phrase against the catalog.
//
// Matching is substring-based, case-insensitive, and bidirectional: an entry
// matches when its name contains the phrase OR the phrase contains the name,
// so both truncated ("appl") and padded ("red apples") utterances resolve.
// Ties go to the first entry in catalog order; there is no scoring beyond
// that.
//
// A miss is not an error: callers compose a "not found" reply.
func Resolve(phrase string, cat *catalog.Catalog) (*catalog.Entry, bool) {
	needle := strings.ToLower(strings.TrimSpace(phrase))
	if needle == "" {
		return nil, false
	}
	for i := range cat.Entries {
		name := strings.ToLower(cat.Entries[i].Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return &cat.Entries[i], true
		}
	}
	return nil, false
}
