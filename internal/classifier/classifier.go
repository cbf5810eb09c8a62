// Package classifier decides which category a mod file belongs to.
package classifier

import (
	"modsort/internal/catalog"
	"modsort/internal/category"
	"modsort/internal/normalizer"
)

// Classification represents the decision for a single mod file.
// The canonical key is always populated so that unmatched files can be
// reported together with the name that was looked up.
type Classification struct {
	Key      string
	Matched  bool
	Category category.Category
}

// Classify derives the canonical key for a filename and looks it up in the
// catalog. It is a pure decision: no file is touched here.
func Classify(filename string, cat catalog.Catalog) *Classification {
	key := normalizer.Normalize(filename)

	c, ok := cat.Lookup(key)
	if !ok {
		return &Classification{Key: key}
	}

	return &Classification{
		Key:      key,
		Matched:  true,
		Category: c,
	}
}
