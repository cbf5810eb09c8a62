// Package catalog loads the mod catalog that maps canonical mod names to
// deployment categories.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"modsort/internal/category"
)

// CatalogErrorType represents the type of catalog loading error.
type CatalogErrorType string

const (
	FileUnreadable CatalogErrorType = "FILE_UNREADABLE"
	InvalidJSON    CatalogErrorType = "INVALID_JSON"
	NotAnArray     CatalogErrorType = "NOT_AN_ARRAY"
	BadEntry       CatalogErrorType = "BAD_ENTRY"
)

// CatalogError represents a problem encountered while loading the catalog.
// Catalog errors are diagnostics, never fatal: the loader degrades to an
// empty or partial catalog and classification proceeds.
type CatalogError struct {
	Type    CatalogErrorType
	Path    string
	Message string
}

func (e *CatalogError) Error() string {
	switch e.Type {
	case FileUnreadable:
		return fmt.Sprintf("cannot read catalog file %s: %s", e.Path, e.Message)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in catalog file %s: %s", e.Path, e.Message)
	case NotAnArray:
		return fmt.Sprintf("catalog file %s: root element must be a JSON array", e.Path)
	case BadEntry:
		return fmt.Sprintf("catalog file %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("catalog error: %s", e.Message)
	}
}

// Catalog maps canonical mod names to their deployment category.
// It is built once at startup and read-only thereafter.
type Catalog map[string]category.Category

// Lookup returns the category for a canonical key.
func (c Catalog) Lookup(key string) (category.Category, bool) {
	cat, ok := c[key]
	return cat, ok
}

// rawEntry mirrors one catalog element. Pointer fields distinguish a
// missing field from an empty string.
type rawEntry struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// Load reads a catalog from a UTF-8 JSON file. It fails softly: whatever
// goes wrong, a usable (possibly empty) Catalog is returned together with
// diagnostics describing what was dropped.
//
// The root must be a JSON array of objects with string "name" and "type"
// fields. Names are lowercased on ingest; duplicate names are resolved
// last-one-wins; unrecognized type tags map to the unknown category.
func Load(path string) (Catalog, []error) {
	cat := make(Catalog)

	data, err := os.ReadFile(path)
	if err != nil {
		return cat, []error{&CatalogError{Type: FileUnreadable, Path: path, Message: err.Error()}}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		// Distinguish a non-array root from outright broken JSON.
		if json.Valid(data) {
			return cat, []error{&CatalogError{Type: NotAnArray, Path: path}}
		}
		return cat, []error{&CatalogError{Type: InvalidJSON, Path: path, Message: err.Error()}}
	}

	var diags []error
	for i, raw := range elements {
		var entry rawEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			diags = append(diags, &CatalogError{
				Type:    BadEntry,
				Path:    path,
				Message: fmt.Sprintf("entry %d is not an object with string \"name\" and \"type\" fields; skipped", i),
			})
			continue
		}
		if entry.Name == nil || entry.Type == nil {
			diags = append(diags, &CatalogError{
				Type:    BadEntry,
				Path:    path,
				Message: fmt.Sprintf("entry %d is missing \"name\" or \"type\"; skipped", i),
			})
			continue
		}

		name := strings.ToLower(*entry.Name)
		cat[name] = category.FromWireTag(*entry.Type)
	}

	return cat, diags
}

// Bootstrap creates an empty catalog file (the literal two bytes "[]")
// when none exists at the given path. An existing file is left untouched.
func Bootstrap(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		return false, err
	}
	return true, nil
}
