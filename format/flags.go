// Package format defines the load-time behavior flags for csvtable.
package format

import "strings"

// LoadFlag is a packed bitset controlling post-load table normalization.
//
// Flags are composable with bitwise OR:
//
//	flags := format.PruneEmptyRows | format.PruneCommentRows
//
// Pruning always runs in a fixed order regardless of flag order: empty-named
// columns first, then comment and empty rows, then headerless header
// synthesis.
type LoadFlag uint8

const (
	// PruneEmptyColumns removes every column whose header field is empty.
	// A non-empty value found in such a column is discarded with a warning.
	PruneEmptyColumns LoadFlag = 1 << iota

	// PruneEmptyRows removes data rows where every field is empty.
	PruneEmptyRows

	// PruneCommentRows removes data rows whose first field starts with '#'.
	PruneCommentRows

	// HeaderlessSingleField synthesizes a one-column header named "name" for
	// files that carry a single column and no header row of their own.
	HeaderlessSingleField

	// None loads the table verbatim with no normalization.
	None LoadFlag = 0

	// Default is the combination used by the convenience loaders: structural
	// cleanup enabled, headerless synthesis off.
	Default = PruneEmptyColumns | PruneEmptyRows | PruneCommentRows
)

// HasPruneEmptyColumns returns whether empty-named column pruning is enabled.
func (f LoadFlag) HasPruneEmptyColumns() bool {
	return (f & PruneEmptyColumns) != 0
}

// HasPruneEmptyRows returns whether empty row pruning is enabled.
func (f LoadFlag) HasPruneEmptyRows() bool {
	return (f & PruneEmptyRows) != 0
}

// HasPruneCommentRows returns whether comment row pruning is enabled.
func (f LoadFlag) HasPruneCommentRows() bool {
	return (f & PruneCommentRows) != 0
}

// HasHeaderlessSingleField returns whether header synthesis is enabled.
func (f LoadFlag) HasHeaderlessSingleField() bool {
	return (f & HeaderlessSingleField) != 0
}

// HasRowPruning returns whether any row pruning flag is set.
func (f LoadFlag) HasRowPruning() bool {
	return (f & (PruneEmptyRows | PruneCommentRows)) != 0
}

func (f LoadFlag) String() string {
	if f == None {
		return "None"
	}

	var parts []string
	if f.HasPruneEmptyColumns() {
		parts = append(parts, "PruneEmptyColumns")
	}
	if f.HasPruneEmptyRows() {
		parts = append(parts, "PruneEmptyRows")
	}
	if f.HasPruneCommentRows() {
		parts = append(parts, "PruneCommentRows")
	}
	if f.HasHeaderlessSingleField() {
		parts = append(parts, "HeaderlessSingleField")
	}
	if len(parts) == 0 {
		return "Unknown"
	}

	return strings.Join(parts, "|")
}
