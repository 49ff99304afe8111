// Package csvtable loads comma-separated tables into memory, cleans them up
// structurally, and writes them back out with canonical quoting.
//
// A loaded table is rectangular by construction: every row carries exactly
// the header's field count, and a mismatched row fails the whole load. Cells
// are stored as views into a single owned buffer, so a table costs one
// allocation per row beyond the file contents themselves.
//
// # Basic Usage
//
// Loading and querying:
//
//	import "github.com/arloliu/csvtable"
//
//	tbl, err := csvtable.Load("zombie_units.csv")
//	if err != nil {
//	    return err
//	}
//	for r := 0; r < tbl.RowCount(); r++ {
//	    fmt.Printf("%s costs %s\n", tbl.CellValue(r, 0), tbl.CellValue(r, 1))
//	}
//
// Writing back:
//
//	if err := tbl.WriteFile("zombie_units_clean.csv", false); err != nil {
//	    return err
//	}
//
// Load applies format.Default normalization: empty-named columns, comment
// rows (leading '#'), and all-empty rows are pruned. Use LoadWithFlags for
// explicit control, and table options to inject a filesystem or logger:
//
//	tbl, err := csvtable.LoadWithFlags("units.csv", format.None,
//	    table.WithLogger(logging.Zerolog(log.Logger)))
//
// Paths ending in .gz, .zst, .lz4, or .s2 are compressed and decompressed
// transparently on write and load.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the table
// package, which holds the full API. The scan package exposes the underlying
// tokenizers and the compress package the file codecs.
package csvtable

import (
	"github.com/arloliu/csvtable/format"
	"github.com/arloliu/csvtable/table"
)

// Table is the in-memory CSV table; see the table package for the full API.
type Table = table.Table

// Option configures a Table at load time; see the table package.
type Option = table.Option

// Load reads the CSV file at path with the default normalization flags.
func Load(path string, opts ...Option) (*Table, error) {
	return table.Load(path, format.Default, opts...)
}

// LoadWithFlags reads the CSV file at path with explicit normalization
// flags.
func LoadWithFlags(path string, flags format.LoadFlag, opts ...Option) (*Table, error) {
	return table.Load(path, flags, opts...)
}

// Parse builds a table from CSV bytes already in memory, taking ownership of
// data. The default normalization flags apply.
func Parse(data []byte, opts ...Option) (*Table, error) {
	return table.Parse(data, format.Default, opts...)
}
